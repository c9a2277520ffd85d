// Package symbol implements the canonical symbol model of the phoneme DSL.
//
// A Terminal is an atomic phoneme and a NonTerminal is a named class of
// symbols, possibly containing other classes. Both are small value handles
// around a private allocation: == compares the allocation, never the text.
// Two terminals created by separate NewTerminal calls are different symbols
// even when their descriptions are equal.
//
// Every symbol of an alphabet must therefore come from one construction
// point. Table is that point: it sorts entries by description, keeps only the
// last entry declared under a given name and answers lookups by name.
//
// Usage:
//
//	terms := symbol.MakeTerms("a", "i", "u", "p")
//	vowels, _ := symbol.FindAll(terms, "a", "i", "u")
//	v := symbol.NewNonTerminal("V", symbol.Symbols(vowels...))
//
//	a, _ := terms.Find("a")
//	v.Contains(a) // true
//
// Everything in this package is immutable after construction and safe for
// concurrent readers.
package symbol

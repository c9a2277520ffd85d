// Package pattern evaluates structural patterns over terminal sequences.
//
// # Pattern Types
//
//   - Terms: a literal run of terminals, matched element by element using
//     symbol identity.
//   - Class: a class reference. It matches only the last terminal of the
//     whole input, and only if that terminal belongs to the class.
//   - And: concatenation. Right is evaluated exactly where Left ended.
//   - Or: ordered alternation. Right is tried only when Left fails.
//
// # Matching
//
// Both atomic forms match at most once at a given offset, so concatenation
// has a single split point and the evaluator never backtracks. Adding an
// atomic form that can match in more than one way would break this.
//
// A Match is a list of segments over input positions. The empty list is the
// "no match" value; failure is never reported as an error.
//
//	terms := symbol.MakeTerms("c", "u", "p", "q")
//	cu, _ := symbol.FindAll(terms, "c", "u")
//	stops, _ := symbol.FindAll(terms, "p", "q")
//	c := symbol.NewNonTerminal("C", symbol.Symbols(stops...))
//
//	p := pattern.AndOf(pattern.TermsOf(cu...), pattern.ClassOf(c))
//	word, _ := symbol.FindAll(terms, "c", "u", "p")
//	m := pattern.MatchTerms(p, word) // {0 3}
//
// Patterns and matches hold no hidden state; evaluating the same pattern
// from many goroutines at once is safe.
package pattern

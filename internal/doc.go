// Package internal provides the rule engine of phonomatch.
//
// An Engine holds an inventory and a list of rules compiled against it. A
// rule is a named pattern with a severity; compiling resolves every phoneme
// and class name of the rule's PatternSpec to the inventory's canonical
// symbols, so matching compares identities only.
//
// Key components:
//
// Engine: applies every active rule to a word. Run works on a parsed word,
// RunSource on word text, RunFile on a word list and RunWords on many words
// at once with a bounded number of goroutines.
//
// CompilePattern: turns the YAML form of a pattern into a pattern.Pattern.
//
// Watching: WatchDir, StartWatching and StopWatching re-run word lists when
// they are written on disk.
//
// Usage:
//
//	inv, d, err := inventory.Load("toy.phono")
//	if err != nil || d.HasErrors() {
//	    // handle error
//	}
//	engine, err := internal.NewEngine(logger, inv, rules)
//	if err != nil {
//	    // handle error
//	}
//	results, err := engine.RunFile("toy.words")
//	if err != nil {
//	    // handle error
//	}
//	for _, r := range results {
//	    if r.Match.Matched() {
//	        fmt.Println(r.Rule, r.Text, r.Match)
//	    }
//	}
package internal

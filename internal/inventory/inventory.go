// Package inventory loads phoneme inventories: the alphabet of terminals and
// the named classes built over it.
//
// An inventory source consists of declarations only:
//
//	; toy language
//	alphabet a, i, u, p, t, k, 'ts'
//	class V = a, i, u
//	class C = p, t, k, 'ts'
//	class Seg = \V, \C
//
// Every terminal and every class is created exactly once, here, and handed
// out through symbol tables. Rules and words resolve names against those
// tables, so two references to "a" always denote the same terminal.
package inventory

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/lexer"
	"github.com/gnoswap-labs/phonomatch/internal/source"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
	"github.com/gnoswap-labs/phonomatch/internal/trie"
)

// Inventory is an immutable set of terminals and classes. It is safe to
// share between goroutines.
type Inventory struct {
	Name      string
	Terminals *symbol.Table[symbol.Terminal]
	Classes   *symbol.Table[symbol.NonTerminal]

	segments *trie.Arena[symbol.Terminal]
}

// Parse reads the declarations in src. The returned inventory holds whatever
// could be built; check the diagnostic before trusting it.
func Parse(src *source.Src) (*Inventory, *diag.Diagnostic) {
	d := diag.New()
	decls := parseDeclarations(src, d)

	terms := buildAlphabet(decls.terminals, d)
	classes := resolveClasses(decls.classes, terms, d)

	return newInventory(src.Name, terms, classes), d
}

// Load reads and parses the inventory file at path.
func Load(path string) (*Inventory, *diag.Diagnostic, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, nil, err
	}
	inv, d := Parse(src)
	return inv, d, nil
}

// FromTables wraps tables that were built elsewhere.
func FromTables(name string, terms *symbol.Table[symbol.Terminal], classes *symbol.Table[symbol.NonTerminal]) *Inventory {
	return newInventory(name, terms, classes)
}

func newInventory(name string, terms *symbol.Table[symbol.Terminal], classes *symbol.Table[symbol.NonTerminal]) *Inventory {
	if terms == nil {
		terms = symbol.NewTable[symbol.Terminal](nil)
	}
	if classes == nil {
		classes = symbol.NewTable[symbol.NonTerminal](nil)
	}

	segments := trie.NewArena[symbol.Terminal]()
	for _, t := range terms.Entries() {
		segments.Insert(graphemes(t.Desc()), t)
	}

	return &Inventory{
		Name:      name,
		Terminals: terms,
		Classes:   classes,
		segments:  segments,
	}
}

func (inv *Inventory) Terminal(name string) (symbol.Terminal, bool) {
	return inv.Terminals.Find(name)
}

func (inv *Inventory) Class(name string) (symbol.NonTerminal, bool) {
	return inv.Classes.Find(name)
}

// ClassesContaining lists, in name order, the classes that contain t.
func (inv *Inventory) ClassesContaining(t symbol.Terminal) []symbol.NonTerminal {
	var out []symbol.NonTerminal
	for _, class := range inv.Classes.Entries() {
		if class.Contains(t) {
			out = append(out, class)
		}
	}
	return out
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("%s (%d phonemes, %d classes)", inv.Name, inv.Terminals.Len(), inv.Classes.Len())
}

// buildAlphabet registers every declared terminal in one table. A repeated
// name is reported and the later declaration wins.
func buildAlphabet(names []lexer.Token, d *diag.Diagnostic) *symbol.Table[symbol.Terminal] {
	seen := make(map[string]struct{}, len(names))
	terms := make([]symbol.Terminal, 0, len(names))
	for _, tok := range names {
		if _, dup := seen[tok.Value]; dup {
			d.Warn(diag.Shadowed{Name: tok.Value, Span: tok.Span})
		}
		seen[tok.Value] = struct{}{}
		terms = append(terms, symbol.NewTerminal(tok.Value))
	}
	return symbol.NewTable(terms)
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

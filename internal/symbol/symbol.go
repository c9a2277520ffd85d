package symbol

import (
	"cmp"
	"fmt"
	"sync/atomic"
)

// DescKey is implemented by everything that can be registered in a Table.
type DescKey interface {
	Desc() string
}

// Symbol is either a Terminal or a NonTerminal.
type Symbol interface {
	DescKey
	fmt.Stringer
	ID() uint64
	isSymbol()
}

var (
	_ Symbol = Terminal{}
	_ Symbol = NonTerminal{}
)

// allocation sequence shared by terminals and classes. IDs only order and
// hash symbols; they carry no meaning across runs.
var nextID atomic.Uint64

func newID() uint64 {
	return nextID.Add(1)
}

// Symbols converts concrete symbols into a member list for NewNonTerminal.
func Symbols[S Symbol](syms ...S) []Symbol {
	out := make([]Symbol, len(syms))
	for i, s := range syms {
		out[i] = s
	}
	return out
}

// CompareSymbols orders terminals before classes and otherwise by identity.
func CompareSymbols(a, b Symbol) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID(), b.ID())
}

func rank(s Symbol) int {
	if _, ok := s.(Terminal); ok {
		return 0
	}
	return 1
}

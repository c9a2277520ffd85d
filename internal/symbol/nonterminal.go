package symbol

import (
	"cmp"
	"slices"
)

type nonTerminal struct {
	id      uint64
	desc    string
	members []Symbol
}

// NonTerminal is a named, immutable class of symbols.
type NonTerminal struct {
	p *nonTerminal
}

// NewNonTerminal builds a class over a copy of members.
//
// Members may be other classes. Contains recurses without cycle detection,
// but since members must exist before the class that holds them, a cycle can
// only be introduced by whoever resolves declarations by name.
func NewNonTerminal(desc string, members []Symbol) NonTerminal {
	return NonTerminal{p: &nonTerminal{
		id:      newID(),
		desc:    desc,
		members: slices.Clone(members),
	}}
}

func (NonTerminal) isSymbol() {}

func (n NonTerminal) Desc() string {
	if n.p == nil {
		return ""
	}
	return n.p.desc
}

func (n NonTerminal) ID() uint64 {
	if n.p == nil {
		return 0
	}
	return n.p.id
}

func (n NonTerminal) IsZero() bool { return n.p == nil }

func (n NonTerminal) Compare(other NonTerminal) int {
	return cmp.Compare(n.ID(), other.ID())
}

// Members returns a copy of the member list in declaration order.
func (n NonTerminal) Members() []Symbol {
	if n.p == nil {
		return nil
	}
	return slices.Clone(n.p.members)
}

// Contains reports whether term is a direct member of n or a member of any
// class nested in n.
func (n NonTerminal) Contains(term Terminal) bool {
	if n.p == nil {
		return false
	}
	for _, member := range n.p.members {
		switch m := member.(type) {
		case Terminal:
			if m == term {
				return true
			}
		case NonTerminal:
			if m.Contains(term) {
				return true
			}
		}
	}
	return false
}

func (n NonTerminal) String() string { return n.Desc() }

package symbol

import (
	"cmp"
	"strings"
)

type terminal struct {
	id   uint64
	desc string
}

// Terminal is an atomic phoneme. The zero value is not a valid terminal.
type Terminal struct {
	p *terminal
}

// NewTerminal allocates a terminal with a new identity.
// Callers should go through a Table (or MakeTerms) so that every reference to
// a phoneme shares one instance.
func NewTerminal(desc string) Terminal {
	return Terminal{p: &terminal{id: newID(), desc: desc}}
}

func (Terminal) isSymbol() {}

func (t Terminal) Desc() string {
	if t.p == nil {
		return ""
	}
	return t.p.desc
}

func (t Terminal) ID() uint64 {
	if t.p == nil {
		return 0
	}
	return t.p.id
}

func (t Terminal) IsZero() bool { return t.p == nil }

// Compare orders terminals by allocation, not by description.
func (t Terminal) Compare(other Terminal) int {
	return cmp.Compare(t.ID(), other.ID())
}

func (t Terminal) String() string { return t.Desc() }

// Word is a sequence of canonical terminals.
type Word []Terminal

func (w Word) Len() int { return len(w) }

func (w Word) String() string {
	parts := make([]string, len(w))
	for i, t := range w {
		parts[i] = t.Desc()
	}
	return strings.Join(parts, " ")
}

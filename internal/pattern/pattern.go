package pattern

import (
	"strings"

	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

// Pattern is a node of the pattern AST.
type Pattern interface {
	isPattern()
	String() string
}

var (
	_ Pattern = Terms{}
	_ Pattern = Class{}
	_ Pattern = And{}
	_ Pattern = Or{}
)

// Terms matches a literal run of terminals.
type Terms struct {
	Seq []symbol.Terminal
}

func (Terms) isPattern() {}
func (p Terms) String() string {
	parts := make([]string, len(p.Seq))
	for i, t := range p.Seq {
		parts[i] = quote(t.Desc())
	}
	return strings.Join(parts, " ")
}

// Class matches a terminal belonging to a class.
type Class struct {
	NonTerminal symbol.NonTerminal
}

func (Class) isPattern() {}
func (p Class) String() string {
	return `\` + p.NonTerminal.Desc()
}

// And is the concatenation of Left and Right.
type And struct {
	Left  Pattern
	Right Pattern
}

func (And) isPattern() {}
func (p And) String() string {
	return "(" + str(p.Left) + " " + str(p.Right) + ")"
}

// Or tries Left, then Right.
type Or struct {
	Left  Pattern
	Right Pattern
}

func (Or) isPattern() {}
func (p Or) String() string {
	return "(" + str(p.Left) + " | " + str(p.Right) + ")"
}

// Helper functions to construct pattern nodes

func TermsOf(seq ...symbol.Terminal) Pattern {
	return Terms{Seq: seq}
}

func ClassOf(class symbol.NonTerminal) Pattern {
	return Class{NonTerminal: class}
}

func AndOf(left, right Pattern) Pattern {
	return And{Left: left, Right: right}
}

func OrOf(left, right Pattern) Pattern {
	return Or{Left: left, Right: right}
}

// Seq folds patterns into left-nested concatenations.
// Seq() returns nil, which never matches.
func Seq(patterns ...Pattern) Pattern {
	return fold(patterns, AndOf)
}

// Alt folds patterns into left-nested alternations, keeping their order.
func Alt(patterns ...Pattern) Pattern {
	return fold(patterns, OrOf)
}

func fold(patterns []Pattern, join func(l, r Pattern) Pattern) Pattern {
	if len(patterns) == 0 {
		return nil
	}
	acc := patterns[0]
	for _, p := range patterns[1:] {
		acc = join(acc, p)
	}
	return acc
}

func str(p Pattern) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

func quote(desc string) string {
	for _, r := range desc {
		if !isBare(r) {
			return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(desc) + "'"
		}
	}
	if desc == "" {
		return "''"
	}
	return desc
}

func isBare(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

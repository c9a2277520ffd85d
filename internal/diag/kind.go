package diag

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/phonomatch/internal/source"
)

// Kind describes what went wrong.
type Kind interface {
	fmt.Stringer
	isKind()
}

var (
	_ Kind = BadChar{}
	_ Kind = UnclosedString{}
	_ Kind = Expected{}
	_ Kind = UnknownTerminal{}
	_ Kind = UnknownClass{}
	_ Kind = CyclicClass{}
	_ Kind = Shadowed{}
)

// BadChar is a character no token can start with.
type BadChar struct {
	Span source.Span
}

func (BadChar) isKind() {}
func (k BadChar) String() string {
	return fmt.Sprintf("unsupported character %s %s", k.Span.Content(), k.Span)
}

// UnclosedString is a quoted string running into end of input.
type UnclosedString struct {
	Span source.Span
}

func (UnclosedString) isKind() {}
func (k UnclosedString) String() string {
	return fmt.Sprintf("unclosed string %s", k.Span)
}

// Expected reports a token that did not fit the grammar.
type Expected struct {
	Expected string
	Found    fmt.Stringer
}

// NewExpected renders the acceptable alternatives as "a, b or c".
func NewExpected(alternatives []string, found fmt.Stringer) Expected {
	return Expected{Expected: JoinAlternatives(alternatives), Found: found}
}

func (Expected) isKind() {}
func (k Expected) String() string {
	return fmt.Sprintf("expected %s, found %s", k.Expected, k.Found)
}

// UnknownTerminal is a phoneme name missing from the alphabet.
type UnknownTerminal struct {
	Name string
	Span source.Span
}

func (UnknownTerminal) isKind() {}
func (k UnknownTerminal) String() string {
	return fmt.Sprintf("unknown phoneme %q %s", k.Name, k.Span)
}

// UnknownClass is a class name that was never declared.
type UnknownClass struct {
	Name string
	Span source.Span
}

func (UnknownClass) isKind() {}
func (k UnknownClass) String() string {
	return fmt.Sprintf(`unknown class \%s %s`, k.Name, k.Span)
}

// CyclicClass is a class that contains itself through its members.
type CyclicClass struct {
	Path []string
}

func (CyclicClass) isKind() {}
func (k CyclicClass) String() string {
	return "cyclic class membership " + strings.Join(k.Path, " -> ")
}

// Shadowed is a declaration hiding an earlier one with the same name.
type Shadowed struct {
	Name string
	Span source.Span
}

func (Shadowed) isKind() {}
func (k Shadowed) String() string {
	return fmt.Sprintf("%s shadows an earlier declaration %s", k.Name, k.Span)
}

// JoinAlternatives joins items as "a", "a or b", "a, b or c".
func JoinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

// Package phonomatch is the public surface of the phoneme pattern matcher.
//
// Symbols, tables and patterns are defined in internal packages; this
// package re-exports what a program embedding the matcher needs.
//
//	inv, err := phonomatch.ParseInventory("toy.phono", "alphabet c, u, p\nclass C = p\n")
//	if err != nil {
//	    // handle error
//	}
//	cu, _ := phonomatch.FindAll(inv.Terminals, "c", "u")
//	c, _ := inv.Class("C")
//	p := phonomatch.Seq(phonomatch.TermsOf(cu...), phonomatch.ClassOf(c))
//
//	word, _ := inv.Word("cup")
//	phonomatch.MatchTerms(p, word) // {0 3}
package phonomatch

import (
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/check"
	"github.com/gnoswap-labs/phonomatch/internal"
	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	"github.com/gnoswap-labs/phonomatch/internal/pattern"
	"github.com/gnoswap-labs/phonomatch/internal/source"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

type (
	Terminal    = symbol.Terminal
	NonTerminal = symbol.NonTerminal
	Symbol      = symbol.Symbol
	Word        = symbol.Word

	// TerminalTable and ClassTable are the two tables an inventory holds.
	TerminalTable = symbol.Table[symbol.Terminal]
	ClassTable    = symbol.Table[symbol.NonTerminal]

	Pattern      = pattern.Pattern
	Match        = pattern.Match
	MatchSegment = pattern.MatchSegment

	Inventory   = inventory.Inventory
	Engine      = internal.Engine
	Result      = tt.Result
	RuleConfig  = tt.RuleConfig
	PatternSpec = tt.PatternSpec
	Severity    = tt.Severity
	Config      = check.Config
)

const (
	SeverityError   = tt.SeverityError
	SeverityWarning = tt.SeverityWarning
	SeverityInfo    = tt.SeverityInfo
	SeverityOff     = tt.SeverityOff
)

func NewTerminal(desc string) Terminal { return symbol.NewTerminal(desc) }

func NewNonTerminal(desc string, members []Symbol) NonTerminal {
	return symbol.NewNonTerminal(desc, members)
}

// NewTable sorts entries by description. Of entries sharing a description,
// the last one wins.
func NewTable[S symbol.DescKey](entries []S) *symbol.Table[S] { return symbol.NewTable(entries) }

func MakeTerms(descs ...string) *TerminalTable { return symbol.MakeTerms(descs...) }

// FindAll looks up every name in order and fails if any is missing.
func FindAll[S symbol.DescKey](t *symbol.Table[S], names ...string) ([]S, bool) {
	return symbol.FindAll(t, names...)
}

// Symbols widens terminals or classes to class members.
func Symbols[S Symbol](syms ...S) []Symbol { return symbol.Symbols(syms...) }

func TermsOf(seq ...Terminal) Pattern              { return pattern.TermsOf(seq...) }
func ClassOf(class NonTerminal) Pattern            { return pattern.ClassOf(class) }
func AndOf(left, right Pattern) Pattern            { return pattern.AndOf(left, right) }
func OrOf(left, right Pattern) Pattern             { return pattern.OrOf(left, right) }
func Seq(patterns ...Pattern) Pattern              { return pattern.Seq(patterns...) }
func Alt(patterns ...Pattern) Pattern              { return pattern.Alt(patterns...) }
func NoMatch() Match                               { return pattern.NoMatch() }
func MatchTerms(p Pattern, input []Terminal) Match { return pattern.MatchTerms(p, input) }

// MatchAt evaluates p against input starting at offset.
func MatchAt(p Pattern, input []Terminal, offset int) Match {
	return pattern.MatchAt(p, input, offset)
}

// ParseInventory reads inventory source text. Warnings are dropped; any
// error fails the whole inventory.
func ParseInventory(name, contents string) (*Inventory, error) {
	inv, d := inventory.Parse(source.New(name, contents))
	if err := d.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// LoadInventory reads an inventory file.
func LoadInventory(path string) (*Inventory, error) {
	inv, d, err := inventory.Load(path)
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// CompilePattern turns a PatternSpec into a pattern over inv's symbols.
func CompilePattern(inv *Inventory, spec PatternSpec) (Pattern, error) {
	return internal.CompilePattern(inv, spec)
}

// NewEngine compiles rules against inv. A nil logger discards logs.
func NewEngine(logger *zap.Logger, inv *Inventory, rules []RuleConfig) (*Engine, error) {
	return internal.NewEngine(logger, inv, rules)
}

// LoadEngine builds an engine from a YAML configuration file.
func LoadEngine(logger *zap.Logger, configPath string) (*Engine, error) {
	return check.New(logger, configPath)
}

package inventory

import (
	"slices"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/lexer"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

type visitState int

const (
	unvisited visitState = iota
	inProgress
	resolved
	failed
)

// resolver builds classes in dependency order. Class references form a
// graph; a reference back into the current DFS stack is a cycle.
type resolver struct {
	decls map[string]classDecl
	terms *symbol.Table[symbol.Terminal]
	diag  *diag.Diagnostic

	state map[string]visitState
	built map[string]symbol.NonTerminal
	stack []string
}

func resolveClasses(decls []classDecl, terms *symbol.Table[symbol.Terminal], d *diag.Diagnostic) *symbol.Table[symbol.NonTerminal] {
	r := &resolver{
		decls: make(map[string]classDecl, len(decls)),
		terms: terms,
		diag:  d,
		state: make(map[string]visitState, len(decls)),
		built: make(map[string]symbol.NonTerminal, len(decls)),
	}

	order := make([]string, 0, len(decls))
	for _, decl := range decls {
		if _, dup := r.decls[decl.name]; dup {
			d.Warn(diag.Shadowed{Name: `\` + decl.name, Span: decl.span})
		} else {
			order = append(order, decl.name)
		}
		r.decls[decl.name] = decl
	}

	classes := make([]symbol.NonTerminal, 0, len(order))
	for _, name := range order {
		if class, ok := r.resolve(name); ok {
			classes = append(classes, class)
		}
	}
	return symbol.NewTable(classes)
}

func (r *resolver) resolve(name string) (symbol.NonTerminal, bool) {
	switch r.state[name] {
	case resolved:
		return r.built[name], true
	case failed:
		return symbol.NonTerminal{}, false
	case inProgress:
		start := slices.Index(r.stack, name)
		path := append(slices.Clone(r.stack[start:]), name)
		for i := range path {
			path[i] = `\` + path[i]
		}
		r.diag.Raise(diag.CyclicClass{Path: path})
		return symbol.NonTerminal{}, false
	}

	r.state[name] = inProgress
	r.stack = append(r.stack, name)

	decl := r.decls[name]
	members := make([]symbol.Symbol, 0, len(decl.members))
	ok := true
	for _, tok := range decl.members {
		member, found := r.member(tok)
		if !found {
			ok = false
			continue
		}
		members = append(members, member)
	}

	r.stack = r.stack[:len(r.stack)-1]
	if !ok {
		r.state[name] = failed
		return symbol.NonTerminal{}, false
	}

	class := symbol.NewNonTerminal(name, members)
	r.state[name] = resolved
	r.built[name] = class
	return class, true
}

func (r *resolver) member(tok lexer.Token) (symbol.Symbol, bool) {
	if tok.Kind == lexer.ClassIdent {
		if _, declared := r.decls[tok.Value]; !declared {
			r.diag.Raise(diag.UnknownClass{Name: tok.Value, Span: tok.Span})
			return nil, false
		}
		class, ok := r.resolve(tok.Value)
		if !ok {
			return nil, false
		}
		return class, true
	}

	term, found := r.terms.Find(tok.Value)
	if !found {
		r.diag.Raise(diag.UnknownTerminal{Name: tok.Value, Span: tok.Span})
		return nil, false
	}
	return term, true
}

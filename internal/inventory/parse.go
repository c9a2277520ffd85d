package inventory

import (
	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/lexer"
	"github.com/gnoswap-labs/phonomatch/internal/source"
)

type classDecl struct {
	name    string
	span    source.Span
	members []lexer.Token
}

type declarations struct {
	terminals []lexer.Token
	classes   []classDecl
}

var (
	declStart  = lexer.Kinds{lexer.Alphabet, lexer.Class}
	memberKind = lexer.Kinds{lexer.String, lexer.ClassIdent}
	className  = lexer.Kinds{lexer.String, lexer.ClassIdent}
	separator  = lexer.Kinds{lexer.Comma, lexer.Pipe}
)

type parser struct {
	lex  *lexer.Lexer
	diag *diag.Diagnostic
}

func parseDeclarations(src *source.Src, d *diag.Diagnostic) declarations {
	p := &parser{lex: lexer.New(src.Reader(), d), diag: d}

	var decls declarations
	for !p.lex.IsEOF() {
		tok, ok := p.lex.Check(declStart)
		if !ok {
			p.recover()
			continue
		}
		p.lex.Next()

		switch tok.Kind {
		case lexer.Alphabet:
			decls.terminals = append(decls.terminals, p.alphabet()...)
		case lexer.Class:
			if decl, ok := p.class(); ok {
				decls.classes = append(decls.classes, decl)
			}
		}
	}
	return decls
}

// alphabet reads the names following an 'alphabet' keyword.
func (p *parser) alphabet() []lexer.Token {
	var names []lexer.Token
	for !p.atDeclEnd() {
		tok, ok := p.lex.Expect(lexer.String)
		if !ok {
			p.recover()
			return names
		}
		names = append(names, tok)
		p.skipSeparator()
	}
	return names
}

// class reads "Name = member, member, ..." after a 'class' keyword.
func (p *parser) class() (classDecl, bool) {
	name, ok := p.lex.Expect(className)
	if !ok {
		p.recover()
		return classDecl{}, false
	}
	if _, ok := p.lex.Expect(lexer.Eq); !ok {
		p.recover()
		return classDecl{}, false
	}

	decl := classDecl{name: name.Value, span: name.Span}
	for !p.atDeclEnd() {
		tok, ok := p.lex.Expect(memberKind)
		if !ok {
			p.recover()
			return decl, true
		}
		decl.members = append(decl.members, tok)
		p.skipSeparator()
	}
	return decl, true
}

func (p *parser) skipSeparator() {
	if tok, ok := p.lex.Curr(); ok && separator.Test(tok) {
		p.lex.Next()
	}
}

func (p *parser) atDeclEnd() bool {
	tok, ok := p.lex.Curr()
	return ok && (tok.Kind == lexer.EOF || declStart.Test(tok))
}

// recover skips ahead to the next declaration keyword. The offending token
// is always consumed so that the parser makes progress.
func (p *parser) recover() {
	p.lex.Next()
	for {
		tok, ok := p.lex.Curr()
		if ok && (tok.Kind == lexer.EOF || declStart.Test(tok)) {
			return
		}
		if !p.lex.Next() {
			return
		}
	}
}

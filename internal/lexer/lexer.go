// Package lexer turns DSL source text into tokens.
//
// The lexer reads lazily: tokens are produced on demand and kept in a buffer,
// so a parser can look ahead with Next/Advance and step back with
// Prev/Rollback without re-reading the source. Lexing problems are reported
// to a diag.Diagnostic and leave a failed slot in the buffer.
package lexer

import (
	"strings"
	"unicode"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/source"
)

type slot struct {
	tok Token
	ok  bool
}

// Lexer is responsible for scanning the source and producing tokens.
type Lexer struct {
	toks   []slot
	pos    int
	reader *source.Reader
	diag   *diag.Diagnostic
}

// New creates a lexer and reads its first token.
func New(reader *source.Reader, d *diag.Diagnostic) *Lexer {
	l := &Lexer{
		toks:   make([]slot, 0, 1),
		reader: reader,
		diag:   d,
	}
	l.toks = append(l.toks, l.read())
	return l
}

// Tokenize reads everything up to end of input and returns the tokens that
// were read successfully, EOF included.
func Tokenize(src *source.Src, d *diag.Diagnostic) []Token {
	l := New(src.Reader(), d)
	for l.Next() {
	}
	tokens := make([]Token, 0, len(l.toks))
	for _, s := range l.toks {
		if s.ok {
			tokens = append(tokens, s.tok)
		}
	}
	return tokens
}

// Curr returns the current token. It returns false if the token could not
// be read; the reason is already in the diagnostic.
func (l *Lexer) Curr() (Token, bool) {
	s := l.toks[l.pos]
	return s.tok, s.ok
}

func (l *Lexer) IsEOF() bool {
	tok, ok := l.Curr()
	return ok && tok.Kind == EOF
}

func (l *Lexer) Next() bool { return l.Advance(1) == 1 }

func (l *Lexer) Prev() bool { return l.Rollback(1) == 1 }

// Advance moves forward by up to count tokens, never past end of input, and
// returns how many it moved. A token that failed to lex can be stepped over.
func (l *Lexer) Advance(count int) int {
	advanced := min(count, len(l.toks)-l.pos-1)
	l.pos += advanced

	for advanced < count && !l.IsEOF() {
		l.toks = append(l.toks, l.read())
		l.pos++
		advanced++
	}
	return advanced
}

// Rollback moves back by up to count tokens and returns how many it moved.
func (l *Lexer) Rollback(count int) int {
	rolled := min(count, l.pos)
	l.pos -= rolled
	return rolled
}

// Check returns the current token if pat accepts it. Otherwise it raises an
// Expected diagnostic, unless the token itself failed to lex.
func (l *Lexer) Check(pat TokenPattern) (Token, bool) {
	tok, ok := l.Curr()
	if !ok {
		return Token{}, false
	}
	if !pat.Test(tok) {
		l.diag.Raise(diag.NewExpected(pat.Render(), tok))
		return tok, false
	}
	return tok, true
}

// Expect is Check followed by Next on success.
func (l *Lexer) Expect(pat TokenPattern) (Token, bool) {
	tok, ok := l.Check(pat)
	if ok {
		l.Next()
	}
	return tok, ok
}

func (l *Lexer) read() slot {
	l.skipDiscardable()

	ch, ok := l.reader.Curr()
	switch {
	case !ok:
		l.reader.Mark()
		return slot{tok: Token{Kind: EOF, Span: l.reader.Span()}, ok: true}
	case isUnquoted(ch):
		return l.readUnquoted()
	case ch == "'":
		return l.readQuoted()
	case ch == `\`:
		return l.readClassIdent()
	}

	if kind, ok := punctuation[ch]; ok {
		l.reader.Mark()
		l.reader.Next()
		return slot{tok: Token{Kind: kind, Span: l.reader.Span()}, ok: true}
	}

	l.reader.Mark()
	l.reader.Next()
	l.diag.Raise(diag.BadChar{Span: l.reader.Span()})
	return slot{}
}

var punctuation = map[string]Kind{
	"=": Eq,
	",": Comma,
	"|": Pipe,
	"(": OpenParen,
	")": CloseParen,
}

var keywords = map[string]Kind{
	"alphabet": Alphabet,
	"class":    Class,
}

func (l *Lexer) skipDiscardable() {
	l.skipWhitespace()
	for l.skipComment() {
		l.skipWhitespace()
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.reader.Curr()
		if !ok || !strings.ContainsFunc(ch, unicode.IsSpace) {
			return
		}
		l.reader.Next()
	}
}

// skipComment skips a ';' comment up to, not including, the newline.
func (l *Lexer) skipComment() bool {
	if ch, ok := l.reader.Curr(); !ok || ch != ";" {
		return false
	}
	for {
		ch, ok := l.reader.Curr()
		if !ok || ch == "\n" || ch == "\r\n" {
			return true
		}
		l.reader.Next()
	}
}

func (l *Lexer) readUnquoted() slot {
	l.reader.Mark()
	for {
		ch, ok := l.reader.Curr()
		if !ok || !isUnquoted(ch) {
			break
		}
		l.reader.Next()
	}

	span := l.reader.Span()
	content := span.Content()
	if kind, ok := keywords[content]; ok {
		return slot{tok: Token{Kind: kind, Span: span}, ok: true}
	}
	return slot{tok: Token{Kind: String, Value: content, Span: span}, ok: true}
}

func (l *Lexer) readClassIdent() slot {
	l.reader.Mark()
	l.reader.Next()

	var name strings.Builder
	for {
		ch, ok := l.reader.Curr()
		if !ok || !isUnquoted(ch) {
			break
		}
		name.WriteString(ch)
		l.reader.Next()
	}

	return slot{tok: Token{Kind: ClassIdent, Value: name.String(), Span: l.reader.Span()}, ok: true}
}

// readQuoted reads 'text'. A backslash takes the next character verbatim.
func (l *Lexer) readQuoted() slot {
	l.reader.Mark()
	var value strings.Builder

	for {
		l.reader.Next()
		ch, ok := l.reader.Curr()
		if !ok {
			l.diag.Raise(diag.UnclosedString{Span: l.reader.Span()})
			return slot{}
		}

		if ch == "'" {
			break
		}
		if ch == `\` {
			l.reader.Next()
			escaped, ok := l.reader.Curr()
			if !ok {
				l.diag.Raise(diag.UnclosedString{Span: l.reader.Span()})
				return slot{}
			}
			ch = escaped
		}
		value.WriteString(ch)
	}

	l.reader.Next()
	return slot{tok: Token{Kind: String, Value: value.String(), Span: l.reader.Span()}, ok: true}
}

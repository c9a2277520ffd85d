package inventory

import (
	"strings"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/lexer"
	"github.com/gnoswap-labs/phonomatch/internal/source"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

// ParseWord reads a word written with the inventory's phonemes. Phonemes may
// be separated by spaces or commas. A quoted string names exactly one
// phoneme; an unquoted run that is not itself a phoneme is split greedily
// into the longest phonemes it starts with, so "tʃa" reads as "tʃ a" when
// both are declared.
func (inv *Inventory) ParseWord(src *source.Src, d *diag.Diagnostic) (symbol.Word, bool) {
	lex := lexer.New(src.Reader(), d)

	var word symbol.Word
	ok := true
	for !lex.IsEOF() {
		tok, read := lex.Curr()
		if !read {
			ok = false
			lex.Next()
			continue
		}

		switch tok.Kind {
		case lexer.Comma:
		case lexer.String, lexer.Alphabet, lexer.Class:
			terms, found := inv.segment(tok, d)
			ok = ok && found
			word = append(word, terms...)
		default:
			d.Raise(diag.NewExpected(lexer.String.Render(), tok))
			ok = false
		}
		lex.Next()
	}

	if !ok {
		return nil, false
	}
	return word, true
}

// Word parses text with ParseWord and folds its diagnostics into an error.
func (inv *Inventory) Word(text string) (symbol.Word, error) {
	d := diag.New()
	word, ok := inv.ParseWord(source.New("<word>", text), d)
	if err := d.Err(); err != nil || !ok {
		return nil, err
	}
	return word, nil
}

func (inv *Inventory) segment(tok lexer.Token, d *diag.Diagnostic) ([]symbol.Terminal, bool) {
	text := tok.Value
	quoted := strings.HasPrefix(tok.Span.Content(), "'")
	if tok.Kind != lexer.String {
		// a keyword is an ordinary run of letters inside a word
		text = tok.Span.Content()
	}

	if t, found := inv.Terminals.Find(text); found {
		return []symbol.Terminal{t}, true
	}
	if quoted {
		d.Raise(diag.UnknownTerminal{Name: text, Span: tok.Span})
		return nil, false
	}

	var out []symbol.Terminal
	rest := graphemes(text)
	for len(rest) > 0 {
		t, n := inv.segments.LongestPrefix(rest)
		if n == 0 {
			d.Raise(diag.UnknownTerminal{Name: strings.Join(rest, ""), Span: tok.Span})
			return nil, false
		}
		out = append(out, t)
		rest = rest[n:]
	}
	return out, true
}

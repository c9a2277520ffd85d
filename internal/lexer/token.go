package lexer

import (
	"fmt"

	"github.com/gnoswap-labs/phonomatch/internal/source"
)

// Kind defines the different types of tokens the lexer produces.
type Kind int

const (
	EOF        Kind = iota // end of input
	Alphabet               // keyword "alphabet"
	Class                  // keyword "class"
	String                 // unquoted run or 'quoted text'
	ClassIdent             // \Name
	Eq                     // '='
	Comma                  // ','
	Pipe                   // '|'
	OpenParen              // '('
	CloseParen             // ')'
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Alphabet:
		return "'alphabet'"
	case Class:
		return "'class'"
	case String:
		return "string"
	case ClassIdent:
		return "class identifier"
	case Eq:
		return "'='"
	case Comma:
		return "','"
	case Pipe:
		return "'|'"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	default:
		return "unknown"
	}
}

// Token is a single lexical token. Value holds the text of String tokens
// (escapes resolved) and the name of ClassIdent tokens.
type Token struct {
	Kind  Kind
	Value string
	Span  source.Span
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Value)
	case ClassIdent:
		return `class identifier \` + t.Value
	default:
		return t.Kind.String()
	}
}

// TokenPattern decides whether a token is acceptable at some point of the
// grammar and describes what was acceptable when it is not.
type TokenPattern interface {
	Test(tok Token) bool
	Render() []string
}

var (
	_ TokenPattern = Kind(0)
	_ TokenPattern = Kinds{}
)

func (k Kind) Test(tok Token) bool { return tok.Kind == k }
func (k Kind) Render() []string    { return []string{k.String()} }

// Kinds accepts any of the listed kinds.
type Kinds []Kind

func (ks Kinds) Test(tok Token) bool {
	for _, k := range ks {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

func (ks Kinds) Render() []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}

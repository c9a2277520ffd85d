// Package source holds DSL source text and a grapheme-wise reader over it.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Src is a named source text.
type Src struct {
	Name     string
	Contents string

	firstLine int
}

func New(name, contents string) *Src {
	return &Src{Name: name, Contents: contents, firstLine: 1}
}

// NewAt creates a source whose first line is line of a larger file, so that
// spans report positions in that file.
func NewAt(name, contents string, line int) *Src {
	return &Src{Name: name, Contents: contents, firstLine: max(line, 1)}
}

// Load reads the file at path.
func Load(path string) (*Src, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading source %s: %w", path, err)
	}
	return New(path, string(content)), nil
}

// Reader returns a reader positioned on the first grapheme of s.
func (s *Src) Reader() *Reader {
	r := &Reader{src: s, state: -1}
	r.load()
	return r
}

// Reader walks a source one extended grapheme cluster at a time, so that a
// base letter and its combining diacritics are read as one character.
type Reader struct {
	src   *Src
	pos   int    // byte offset of cur
	cur   string // current grapheme, empty at end of input
	state int
	mark  int
}

func (r *Reader) load() {
	if r.pos >= len(r.src.Contents) {
		r.cur = ""
		return
	}
	r.cur, _, _, r.state = uniseg.FirstGraphemeClusterInString(r.src.Contents[r.pos:], r.state)
}

// Curr returns the current grapheme, or false at end of input.
func (r *Reader) Curr() (string, bool) {
	return r.cur, r.cur != ""
}

// Next moves past the current grapheme. It returns false if there was none.
func (r *Reader) Next() bool {
	if r.cur == "" {
		return false
	}
	r.pos += len(r.cur)
	r.load()
	return true
}

// Mark records the current position as the start of the next span.
func (r *Reader) Mark() { r.mark = r.pos }

// Span covers everything read since the last Mark.
func (r *Reader) Span() Span {
	return Span{Src: r.src, Start: r.mark, End: r.pos}
}

func (r *Reader) Offset() int { return r.pos }

// Span is a byte range of a source.
type Span struct {
	Src   *Src
	Start int
	End   int
}

func (s Span) Content() string {
	if s.Src == nil {
		return ""
	}
	return s.Src.Contents[s.Start:s.End]
}

// Position returns the 1-based line and column of the span start.
// Columns count runes.
func (s Span) Position() (line, column int) {
	if s.Src == nil {
		return 0, 0
	}
	before := s.Src.Contents[:s.Start]
	line = strings.Count(before, "\n") + max(s.Src.firstLine, 1)
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}

func (s Span) String() string {
	if s.Src == nil {
		return "<unknown>"
	}
	line, column := s.Position()
	return fmt.Sprintf("%s:%d:%d", s.Src.Name, line, column)
}

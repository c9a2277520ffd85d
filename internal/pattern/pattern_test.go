package pattern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

type fixture struct {
	terms   *symbol.Table[symbol.Terminal]
	classes *symbol.Table[symbol.NonTerminal]
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	terms := symbol.MakeTerms("a", "i", "u", "p", "c", "q")
	vowels, ok := symbol.FindAll(terms, "a", "i", "u")
	require.True(t, ok)
	stops, ok := symbol.FindAll(terms, "p", "c", "q")
	require.True(t, ok)

	classes := symbol.NewTable([]symbol.NonTerminal{
		symbol.NewNonTerminal("V", symbol.Symbols(vowels...)),
		symbol.NewNonTerminal("C", symbol.Symbols(stops...)),
	})
	return fixture{terms: terms, classes: classes}
}

func (f fixture) word(t *testing.T, names ...string) []symbol.Terminal {
	t.Helper()
	w, ok := symbol.FindAll(f.terms, names...)
	require.True(t, ok)
	return w
}

func (f fixture) class(t *testing.T, name string) symbol.NonTerminal {
	t.Helper()
	c, ok := f.classes.Find(name)
	require.True(t, ok)
	return c
}

func seg(start, length int) Match {
	return Match{Segments: []MatchSegment{{Start: start, Len: length}}}
}

func TestTermsPattern(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	apu := f.word(t, "a", "p", "u")
	pat := TermsOf(apu...)

	assert.Equal(t, seg(0, 3), MatchTerms(pat, apu))
	assert.Equal(t, NoMatch(), MatchTerms(pat, f.word(t, "q", "i", "u", "a")))
	assert.Equal(t, seg(0, 3), MatchTerms(pat, f.word(t, "a", "p", "u", "q")))
	assert.Equal(t, NoMatch(), MatchTerms(pat, f.word(t, "a", "p")))
	assert.Equal(t, NoMatch(), MatchTerms(pat, nil))
}

func TestTermsPatternUsesIdentity(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	lookalike := []symbol.Terminal{symbol.NewTerminal("a")}
	pat := TermsOf(f.word(t, "a")...)

	assert.True(t, MatchTerms(pat, lookalike).Unmatched())
}

func TestEmptyTermsMatchesEmptySpan(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	m := MatchTerms(TermsOf(), f.word(t, "a"))
	assert.True(t, m.Matched())
	assert.Equal(t, seg(0, 0), m)
	assert.Equal(t, 0, m.GeneralLen())
}

func TestClassPattern(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pat := ClassOf(f.class(t, "V"))

	tests := []struct {
		name  string
		input []string
		want  Match
	}{
		{"vowel a", []string{"a"}, seg(0, 1)},
		{"vowel i", []string{"i"}, seg(0, 1)},
		{"two terminals", []string{"i", "a"}, NoMatch()},
		{"consonant", []string{"p"}, NoMatch()},
		{"empty input", nil, NoMatch()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTerms(pat, f.word(t, tt.input...)))
		})
	}
}

func TestClassPatternOnlyMatchesFinalPosition(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	v := f.class(t, "V")
	input := f.word(t, "a", "i", "p")

	// a vowel at offset 0 and 1 is not the last terminal of the input
	assert.True(t, MatchAt(ClassOf(v), input, 0).Unmatched())
	assert.True(t, MatchAt(ClassOf(v), input, 1).Unmatched())
	assert.Equal(t, seg(2, 1), MatchAt(ClassOf(f.class(t, "C")), input, 2))
	assert.True(t, MatchAt(ClassOf(v), input, 3).Unmatched())
}

func TestAndPattern(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pat := AndOf(TermsOf(f.word(t, "c", "u")...), ClassOf(f.class(t, "C")))

	tests := []struct {
		name  string
		input []string
		want  Match
	}{
		{"left only", []string{"c", "u"}, NoMatch()},
		{"left fails", []string{"i"}, NoMatch()},
		{"merged", []string{"c", "u", "p"}, seg(0, 3)},
		{"right alone", []string{"q"}, NoMatch()},
		{"right not in class", []string{"c", "u", "a"}, NoMatch()},
		{"trailing input", []string{"c", "u", "p", "a"}, NoMatch()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTerms(pat, f.word(t, tt.input...)))
		})
	}
}

func TestOrPattern(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pat := OrOf(TermsOf(f.word(t, "c", "u")...), ClassOf(f.class(t, "C")))

	tests := []struct {
		name  string
		input []string
		want  Match
	}{
		{"left", []string{"c", "u"}, seg(0, 2)},
		{"neither", []string{"i"}, NoMatch()},
		{"left wins over remainder", []string{"c", "u", "p"}, seg(0, 2)},
		{"right", []string{"q"}, seg(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTerms(pat, f.word(t, tt.input...)))
		})
	}
}

func TestNestedPatterns(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	v := ClassOf(f.class(t, "V"))
	c := ClassOf(f.class(t, "C"))
	pu := TermsOf(f.word(t, "p", "u")...)
	q := TermsOf(f.word(t, "q")...)

	// (p u | q) followed by a final vowel or stop
	pat := Seq(Alt(pu, q), Alt(v, c))

	assert.Equal(t, seg(0, 3), MatchTerms(pat, f.word(t, "p", "u", "a")))
	assert.Equal(t, seg(0, 2), MatchTerms(pat, f.word(t, "q", "c")))
	assert.True(t, MatchTerms(pat, f.word(t, "q", "c", "a")).Unmatched())
	assert.True(t, MatchTerms(pat, f.word(t, "p", "u")).Unmatched())

	// three-way concatenation merges into one segment
	chain := Seq(q, TermsOf(f.word(t, "a")...), c)
	assert.Equal(t, seg(0, 3), MatchTerms(chain, f.word(t, "q", "a", "p")))
}

func TestSeqAndAltFolding(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	a := TermsOf(f.word(t, "a")...)
	i := TermsOf(f.word(t, "i")...)
	u := TermsOf(f.word(t, "u")...)

	assert.Nil(t, Seq())
	assert.Equal(t, a, Seq(a))
	assert.Equal(t, AndOf(AndOf(a, i), u), Seq(a, i, u))
	assert.Equal(t, OrOf(OrOf(a, i), u), Alt(a, i, u))
	assert.True(t, MatchTerms(Seq(), f.word(t, "a")).Unmatched())
}

func TestPatternString(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ts := symbol.NewTerminal("t's")
	pat := OrOf(
		AndOf(TermsOf(f.word(t, "c", "u")...), ClassOf(f.class(t, "C"))),
		TermsOf(ts),
	)
	assert.Equal(t, `((c u \C) | 't\'s')`, pat.String())
	assert.Equal(t, "(<nil> | a)", OrOf(nil, TermsOf(f.word(t, "a")...)).String())
}

func TestMatchIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pat := AndOf(TermsOf(f.word(t, "c", "u")...), ClassOf(f.class(t, "C")))
	input := f.word(t, "c", "u", "q")

	first := MatchTerms(pat, input)
	second := MatchTerms(pat, input)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first, second)
}

func TestConcurrentMatching(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pat := OrOf(
		AndOf(TermsOf(f.word(t, "c", "u")...), ClassOf(f.class(t, "C"))),
		ClassOf(f.class(t, "V")),
	)
	inputs := [][]symbol.Terminal{
		f.word(t, "c", "u", "p"),
		f.word(t, "a"),
		f.word(t, "q", "q"),
	}
	want := []Match{seg(0, 3), seg(0, 1), NoMatch()}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], MatchTerms(pat, in))
			}
		}()
	}
	wg.Wait()
}

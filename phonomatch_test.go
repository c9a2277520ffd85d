package phonomatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toy = `alphabet c, u, p, a
class V = u, a
class C = c, p
`

func TestMatchThroughInventory(t *testing.T) {
	t.Parallel()

	inv, err := ParseInventory("toy.phono", toy)
	require.NoError(t, err)

	cu, ok := FindAll(inv.Terminals, "c", "u")
	require.True(t, ok)
	c, ok := inv.Class("C")
	require.True(t, ok)

	p := Seq(TermsOf(cu...), ClassOf(c))
	assert.Equal(t, `(c u \C)`, p.String())

	word, err := inv.Word("cup")
	require.NoError(t, err)
	assert.Equal(t, []MatchSegment{{Start: 0, Len: 3}}, MatchTerms(p, word).Segments)

	word, err = inv.Word("cua")
	require.NoError(t, err)
	assert.True(t, MatchTerms(p, word).Unmatched())

	v, _ := inv.Class("V")
	assert.True(t, MatchAt(ClassOf(v), word, 2).Matched())
}

func TestSymbolsAreIdentities(t *testing.T) {
	t.Parallel()

	a1, a2 := NewTerminal("a"), NewTerminal("a")
	assert.NotEqual(t, a1, a2)

	table := NewTable([]Terminal{a1, a2})
	assert.Equal(t, 1, table.Len())
	got, ok := table.Find("a")
	require.True(t, ok)
	assert.Equal(t, a2, got)

	v := NewNonTerminal("V", Symbols(a2))
	assert.True(t, v.Contains(a2))
	assert.False(t, v.Contains(a1))

	terms := MakeTerms("x", "y")
	xy, ok := FindAll(terms, "x", "y")
	require.True(t, ok)
	m := MatchTerms(Alt(TermsOf(xy[1]), TermsOf(xy[0])), xy)
	assert.Equal(t, "{0 1}", m.String())
	assert.True(t, MatchTerms(AndOf(TermsOf(xy[1]), TermsOf(xy[0])), xy).Unmatched())
	assert.True(t, MatchTerms(OrOf(TermsOf(xy[1]), TermsOf(xy[1])), xy).Equal(NoMatch()))
}

func TestParseInventoryError(t *testing.T) {
	t.Parallel()
	_, err := ParseInventory("bad.phono", "alphabet a\nclass V = a, o\n")
	assert.Error(t, err)
}

func TestEngineFromFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.phono"), []byte(toy), 0o644))
	config := `name: toy
inventory: toy.phono
rules:
  - name: final-vowel
    severity: warning
    pattern:
      class: V
`
	cfgPath := filepath.Join(dir, "phonomatch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(config), 0o644))

	engine, err := LoadEngine(nil, cfgPath)
	require.NoError(t, err)

	results, err := engine.RunSource("a")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, SeverityWarning, results[0].Severity)
	assert.True(t, results[0].Match.Matched())

	inv, err := LoadInventory(filepath.Join(dir, "toy.phono"))
	require.NoError(t, err)
	spec := PatternSpec{Terms: []string{"c", "u"}}
	p, err := CompilePattern(inv, spec)
	require.NoError(t, err)
	assert.Equal(t, "c u", p.String())

	direct, err := NewEngine(nil, inv, []RuleConfig{{Name: "cu", Pattern: spec}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cu"}, direct.Rules())
}

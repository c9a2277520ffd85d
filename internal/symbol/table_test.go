package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableSortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	first := NewTerminal("u")
	second := NewTerminal("a")
	shadow := NewTerminal("u")
	third := NewTerminal("i")
	last := NewTerminal("u")

	table := NewTable([]Terminal{first, second, shadow, third, last})

	assert.Equal(t, []string{"a", "i", "u"}, table.Names())
	assert.Equal(t, 3, table.Len())

	got, ok := table.Find("u")
	require.True(t, ok)
	assert.True(t, got == last, "the last declaration must win")
	assert.False(t, got == first)
	assert.False(t, got == shadow)
}

func TestNewTableKeepsLastClass(t *testing.T) {
	t.Parallel()

	a := NewTerminal("a")
	i := NewTerminal("i")
	early := NewNonTerminal("V", []Symbol{a})
	late := NewNonTerminal("V", []Symbol{i})

	table := NewTable([]NonTerminal{early, late})
	require.Equal(t, 1, table.Len())

	v, ok := table.Find("V")
	require.True(t, ok)
	assert.True(t, v == late)
	assert.True(t, v.Contains(i))
	assert.False(t, v.Contains(a))
}

func TestTableFind(t *testing.T) {
	t.Parallel()

	table := MakeTerms("q", "a", "p", "ts", "i")

	tests := []struct {
		query string
		found bool
	}{
		{"a", true},
		{"i", true},
		{"p", true},
		{"q", true},
		{"ts", true},
		{"t", false},
		{"", false},
		{"A", false},
		{"zz", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := table.Find(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.query, got.Desc())
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestEmptyAndNilTable(t *testing.T) {
	t.Parallel()

	empty := NewTable[Terminal](nil)
	_, ok := empty.Find("a")
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())

	var nilTable *Table[Terminal]
	_, ok = nilTable.Find("a")
	assert.False(t, ok)
	assert.Nil(t, nilTable.Entries())
}

func TestTableEntriesAreCopied(t *testing.T) {
	t.Parallel()

	table := MakeTerms("a", "i")
	entries := table.Entries()
	entries[0] = NewTerminal("zz")

	_, ok := table.Find("a")
	assert.True(t, ok)
	_, ok = table.Find("zz")
	assert.False(t, ok)
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	table := MakeTerms("a", "p", "u")

	got, ok := FindAll(table, "a", "p", "u", "a")
	require.True(t, ok)
	require.Len(t, got, 4)
	assert.True(t, got[0] == got[3])
	assert.Equal(t, "p", got[1].Desc())

	got, ok = FindAll(table, "a", "x")
	assert.False(t, ok)
	assert.Nil(t, got)
}

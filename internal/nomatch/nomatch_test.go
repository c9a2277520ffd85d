package nomatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRuleNames(t *testing.T) {
	t.Parallel()
	result := parseRuleNames("rule1, rule2,,rule3 ")
	assert.Equal(t, map[string]struct{}{"rule1": {}, "rule2": {}, "rule3": {}}, result)
}

func TestSplitComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		word    string
		comment string
	}{
		{"cup", "cup", ""},
		{"cup ; note", "cup ", " note"},
		{"; only", "", " only"},
		{`'a;b' c ; x`, `'a;b' c `, " x"},
		{`'a\';b' ; x`, `'a\';b' `, " x"},
	}

	for _, tc := range tests {
		word, comment := splitComment(tc.line)
		assert.Equal(t, tc.word, word, tc.line)
		assert.Equal(t, tc.comment, comment, tc.line)
	}
}

func TestParseDirective(t *testing.T) {
	t.Parallel()

	rules, err := parseDirective(" nomatch")
	assert.NoError(t, err)
	assert.Empty(t, rules)

	rules, err = parseDirective(" nomatch: a, b")
	assert.NoError(t, err)
	assert.Len(t, rules, 2)

	for _, bad := range []string{"", " just a note", "nomatchx", "nomatch:", "nomatch:  "} {
		_, err := parseDirective(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsSuppressed(t *testing.T) {
	t.Parallel()
	contents := `; toy words
cup
pa
tsa ; nomatch:onset
; nomatch
ipa

; nomatch:cu-coda, final-vowel
cuq
ucu ; not a directive
`
	manager := ParseComments(contents)
	assert.Equal(t, 3, manager.Len())

	tests := []struct {
		rule     string
		line     int
		expected bool
	}{
		{"onset", 2, false},
		{"onset", 4, true},
		{"final-vowel", 4, false},
		{"anyrule", 5, true},
		{"anyrule", 6, true},
		{"anyrule", 7, false},
		{"cu-coda", 9, true},
		{"final-vowel", 9, true},
		{"onset", 9, false},
		{"cu-coda", 10, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, manager.IsSuppressed(tc.line, tc.rule), "line %d rule %s", tc.line, tc.rule)
	}
}

func TestFileWideDirective(t *testing.T) {
	t.Parallel()
	manager := ParseComments("; nomatch:onset\n\ncup\npa\n")

	assert.True(t, manager.IsSuppressed(3, "onset"))
	assert.True(t, manager.IsSuppressed(4, "onset"))
	assert.False(t, manager.IsSuppressed(3, "cu-coda"))
}

func TestNilManager(t *testing.T) {
	t.Parallel()
	var manager *Manager
	assert.False(t, manager.IsSuppressed(1, "any"))
	assert.Zero(t, manager.Len())
}

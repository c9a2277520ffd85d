package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/check"
	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	"github.com/gnoswap-labs/phonomatch/internal/pattern"
	"github.com/gnoswap-labs/phonomatch/internal/source"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// setupProject writes the starter configuration into a temporary directory
// and returns the configuration path.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, defaultConfigFile)
	require.NoError(t, initConfigurationFile(cfg))
	return cfg
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	cfg := setupProject(t)

	config, err := check.LoadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "phonomatch", config.Name)
	assert.Equal(t, defaultInventoryFile, config.Inventory)
	require.Len(t, config.Rules, 2)
	assert.Equal(t, tt.SeverityError, config.Rules[0].Severity)
	assert.Equal(t, tt.SeverityInfo, config.Rules[1].Severity)

	engine, err := check.New(zap.NewNop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"nasal-stop", "final-vowel"}, engine.Rules())
}

func TestInitKeepsExistingInventory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	invPath := filepath.Join(dir, defaultInventoryFile)
	require.NoError(t, os.WriteFile(invPath, []byte("alphabet x\n"), 0o644))

	require.NoError(t, initConfigurationFile(filepath.Join(dir, "custom.yaml")))

	data, err := os.ReadFile(invPath)
	require.NoError(t, err)
	assert.Equal(t, "alphabet x\n", string(data))
}

func TestRunMatch(t *testing.T) {
	t.Parallel()
	cfg := setupProject(t)
	engine, err := check.New(zap.NewNop(), cfg)
	require.NoError(t, err)

	wordsPath := filepath.Join(filepath.Dir(cfg), "sample.words")
	require.NoError(t, os.WriteFile(wordsPath, []byte("; sample\nnt\npanta\n"), 0o644))

	tests := []struct {
		name       string
		paths      []string
		words      []string
		opts       matchOptions
		wantFailed bool
		contains   []string
		excludes   []string
	}{
		{
			name:       "error severity match fails",
			words:      []string{"n t"},
			wantFailed: true,
			contains:   []string{"error: nasal-stop", "<word>", "n t", "= matched {0 2}"},
			excludes:   []string{"final-vowel"},
		},
		{
			name:     "info severity match passes",
			words:    []string{"a"},
			contains: []string{"info: final-vowel", "= matched {0 1}"},
			excludes: []string{"nasal-stop"},
		},
		{
			name:     "all shows misses",
			words:    []string{"a"},
			opts:     matchOptions{all: true},
			contains: []string{"error: nasal-stop", "= no match", "info: final-vowel"},
		},
		{
			name:       "word file",
			paths:      []string{wordsPath},
			wantFailed: true,
			contains:   []string{"sample.words:2", "n t"},
			excludes:   []string{"sample.words:3"},
		},
		{
			name:       "json",
			words:      []string{"n t"},
			opts:       matchOptions{json: true},
			wantFailed: true,
			contains:   []string{`"rule": "nasal-stop"`, `"severity": "error"`, `"word": "n t"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			failed, err := runMatch(context.Background(), zap.NewNop(), engine, tc.paths, tc.words, tc.opts, &buf)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFailed, failed)

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRunMatchJSONOutputFile(t *testing.T) {
	t.Parallel()
	cfg := setupProject(t)
	engine, err := check.New(zap.NewNop(), cfg)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.json")
	var buf bytes.Buffer
	_, err = runMatch(context.Background(), nil, engine, nil, []string{"a"},
		matchOptions{json: true, jsonOutput: out}, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rule": "final-vowel"`)
}

func TestRunMatchBadWord(t *testing.T) {
	t.Parallel()
	cfg := setupProject(t)
	engine, err := check.New(zap.NewNop(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = runMatch(context.Background(), nil, engine, nil, []string{"x y"}, matchOptions{}, &buf)
	assert.Error(t, err)
	assert.Empty(t, buf.String())

	missing := filepath.Join(t.TempDir(), "missing.words")
	_, err = runMatch(context.Background(), nil, engine, []string{missing}, nil, matchOptions{}, &buf)
	assert.ErrorContains(t, err, "no such file or directory")
}

func TestRunMatchPrintsResultsBeforeError(t *testing.T) {
	t.Parallel()
	cfg := setupProject(t)
	engine, err := check.New(zap.NewNop(), cfg)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.words"), []byte("nt\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.words"), []byte("zzz\n"), 0o644))

	var buf bytes.Buffer
	failed, err := runMatch(context.Background(), nil, engine, []string{dir}, []string{"x y", "a"}, matchOptions{}, &buf)
	require.Error(t, err)
	assert.ErrorContains(t, err, "b.words")
	assert.True(t, failed)

	out := buf.String()
	assert.Contains(t, out, "error: nasal-stop")
	assert.Contains(t, out, "a.words:1")
	assert.Contains(t, out, "info: final-vowel")
}

func TestPrintTokens(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.phono")
	require.NoError(t, os.WriteFile(good, []byte("alphabet a, 'ts'\nclass V = a\n"), 0o644))

	var buf bytes.Buffer
	ok, err := printTokens(good, &buf)
	require.NoError(t, err)
	assert.True(t, ok)
	out := buf.String()
	assert.Contains(t, out, "1:1\t'alphabet'\n")
	assert.Contains(t, out, "1:10\tstring \"a\"\n")
	assert.Contains(t, out, "1:11\t','\n")
	assert.Contains(t, out, "1:13\tstring \"ts\"\n")
	assert.Contains(t, out, "2:1\t'class'\n")
	assert.Contains(t, out, "end of input")

	bad := filepath.Join(dir, "bad.phono")
	require.NoError(t, os.WriteFile(bad, []byte("alphabet 'ts"), 0o644))

	buf.Reset()
	ok, err = printTokens(bad, &buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Compilation failed")

	_, err = printTokens(filepath.Join(dir, "missing.phono"), &buf)
	assert.Error(t, err)
}

func TestPrintClasses(t *testing.T) {
	t.Parallel()
	inv, d := inventory.Parse(source.New("starter.phono", starterInventory))
	require.NoError(t, d.Err())

	tests := []struct {
		name     string
		contains string
		want     string
		wantErr  bool
	}{
		{
			name: "all",
			want: "\\C = \\Stop, \\Nasal, s\n" +
				"\\Nasal = m, n\n" +
				"\\Stop = p, t, k\n" +
				"\\V = a, e, i, o, u\n",
		},
		{
			name:     "containing a nested member",
			contains: "t",
			want:     "\\C = \\Stop, \\Nasal, s\n\\Stop = p, t, k\n",
		},
		{
			name:     "unknown phoneme",
			contains: "x",
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := printClasses(inv, tc.contains, &buf)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWatchReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report := newWatchReporter(&buf)

	report("a.words", nil, errors.New("boom"))
	assert.Equal(t, "a.words: boom\n", buf.String())

	buf.Reset()
	report("b.words", []tt.Result{{Rule: "r", Text: "a", Match: pattern.NoMatch()}}, nil)
	assert.Equal(t, "b.words: no matches\n", buf.String())

	buf.Reset()
	report("c.words", []tt.Result{{
		Rule:     "r",
		Filename: "c.words",
		Line:     3,
		Text:     "a",
		Match:    pattern.Match{Segments: []pattern.MatchSegment{{Start: 0, Len: 1}}},
	}}, nil)
	assert.Contains(t, buf.String(), "error: r")
	assert.Contains(t, buf.String(), "c.words:3")
}

package internal

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	"github.com/gnoswap-labs/phonomatch/internal/nomatch"
	"github.com/gnoswap-labs/phonomatch/internal/pattern"
	"github.com/gnoswap-labs/phonomatch/internal/source"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

// ErrBadWord is wrapped by errors about words that could not be read.
var ErrBadWord = errors.New("bad word")

type rule struct {
	name     string
	severity tt.Severity
	pattern  pattern.Pattern
}

// Engine applies compiled rules to words.
//
// The Run methods may be called concurrently; the inventory and the pattern
// trees are never written after NewEngine.
// IgnoreRule and SetWorkers must not race with them.
type Engine struct {
	inventory    *inventory.Inventory
	rules        []rule
	ignoredRules map[string]bool
	workers      int
	logger       *zap.Logger

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching atomic.Bool
	watchDone  chan struct{}
	watchMu    sync.Mutex
	reporter   func(filename string, results []tt.Result, err error)
}

// NewEngine compiles every rule against inv. A rule set to severity off is
// compiled but never applied.
func NewEngine(logger *zap.Logger, inv *inventory.Inventory, rules []tt.RuleConfig) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if inv == nil {
		return nil, errors.New("engine needs an inventory")
	}

	engine := &Engine{
		inventory:    inv,
		ignoredRules: make(map[string]bool),
		workers:      runtime.NumCPU(),
		logger:       logger,
	}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

func (e *Engine) applyRules(rules []tt.RuleConfig) error {
	seen := make(map[string]bool, len(rules))
	for i, cfg := range rules {
		if cfg.Name == "" {
			return fmt.Errorf("rule #%d has no name", i+1)
		}
		if seen[cfg.Name] {
			return fmt.Errorf("rule %s is defined more than once", cfg.Name)
		}
		seen[cfg.Name] = true

		p, err := CompilePattern(e.inventory, cfg.Pattern)
		if err != nil {
			return fmt.Errorf("rule %s: %w", cfg.Name, err)
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(cfg.Name)
		}
		e.rules = append(e.rules, rule{name: cfg.Name, severity: cfg.Severity, pattern: p})
		e.logger.Debug("compiled rule", zap.String("rule", cfg.Name), zap.Stringer("pattern", p))
	}
	return nil
}

func (e *Engine) Inventory() *inventory.Inventory { return e.inventory }

// Rules returns the rule names in configuration order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.name
	}
	return names
}

// Pattern returns the compiled pattern of a rule.
func (e *Engine) Pattern(name string) (pattern.Pattern, bool) {
	for _, r := range e.rules {
		if r.name == name {
			return r.pattern, true
		}
	}
	return nil, false
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// SetWorkers bounds the goroutines RunWords uses. Values below one mean one.
func (e *Engine) SetWorkers(n int) {
	e.workers = max(n, 1)
}

func (e *Engine) Workers() int { return max(e.workers, 1) }

// Run applies every active rule to word, in configuration order. Each rule
// yields a result, matched or not.
func (e *Engine) Run(word symbol.Word) []tt.Result {
	results := make([]tt.Result, 0, len(e.rules))
	text := word.String()
	for _, r := range e.rules {
		if e.ignoredRules[r.name] {
			continue
		}
		results = append(results, tt.Result{
			Rule:     r.name,
			Severity: r.severity,
			Word:     word,
			Text:     text,
			Match:    pattern.MatchTerms(r.pattern, word),
		})
	}
	return results
}

// RunSource reads one word written in the inventory's phonemes and runs it.
func (e *Engine) RunSource(text string) ([]tt.Result, error) {
	word, err := e.inventory.Word(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadWord, text, err)
	}
	return e.Run(word), nil
}

// RunFile runs every word of a word list: one word per line, blank lines and
// ';' comments ignored. A file with any unreadable word yields no results.
// Results suppressed by a nomatch comment are dropped.
func (e *Engine) RunFile(filename string) ([]tt.Result, error) {
	return e.RunFileContext(context.Background(), filename)
}

// RunFileContext is RunFile that stops matching once ctx is done.
func (e *Engine) RunFileContext(ctx context.Context, filename string) ([]tt.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := source.Load(filename)
	if err != nil {
		return nil, err
	}

	words, lines, err := e.readWords(src)
	if err != nil {
		return nil, err
	}

	perWord, err := e.RunWords(ctx, words)
	if err != nil {
		return nil, err
	}

	suppressions := nomatch.ParseComments(src.Contents)
	var results []tt.Result
	for i, rs := range perWord {
		for _, r := range rs {
			if suppressions.IsSuppressed(lines[i], r.Rule) {
				continue
			}
			r.Filename = filename
			r.Line = lines[i]
			results = append(results, r)
		}
	}
	return results, nil
}

func (e *Engine) readWords(src *source.Src) ([]symbol.Word, []int, error) {
	var (
		words []symbol.Word
		lines []int
		errs  []error
	)
	for i, line := range strings.Split(src.Contents, "\n") {
		d := diag.New()
		word, ok := e.inventory.ParseWord(source.NewAt(src.Name, line, i+1), d)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %w", ErrBadWord, d.Err()))
			continue
		}
		if len(word) == 0 {
			continue
		}
		words = append(words, word)
		lines = append(lines, i+1)
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	return words, lines, nil
}

// RunWords runs many words concurrently. The results are in input order.
func (e *Engine) RunWords(ctx context.Context, words []symbol.Word) ([][]tt.Result, error) {
	results := make([][]tt.Result, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.workers, 1))
	for i, word := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Run(word)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/phonomatch/internal"
	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
	"github.com/gnoswap-labs/phonomatch/scanner"
)

// WordsExtension marks word list files.
const WordsExtension = ".words"

type Engine interface {
	RunFile(filename string) ([]tt.Result, error)
	RunFileContext(ctx context.Context, filename string) ([]tt.Result, error)
	RunSource(text string) ([]tt.Result, error)
	IgnoreRule(rule string)
}

var _ Engine = (*internal.Engine)(nil)

// Config represents the overall configuration: an inventory file and the
// rules to apply.
type Config struct {
	Name      string          `yaml:"name"`
	Inventory string          `yaml:"inventory"`
	Workers   int             `yaml:"workers,omitempty"`
	Rules     []tt.RuleConfig `yaml:"rules"`
}

// New builds an engine from the configuration file at configurationPath.
// The inventory path is relative to the configuration file.
func New(logger *zap.Logger, configurationPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	if config.Inventory == "" {
		return nil, fmt.Errorf("%s: no inventory configured", configurationPath)
	}

	invPath := config.Inventory
	if !filepath.IsAbs(invPath) {
		invPath = filepath.Join(filepath.Dir(configurationPath), invPath)
	}
	inv, d, err := inventory.Load(invPath)
	if err != nil {
		return nil, err
	}
	for _, e := range d.Errors() {
		if e.Warning && logger != nil {
			logger.Warn("inventory", zap.String("file", invPath), zap.String("warning", e.Kind.String()))
		}
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("error loading inventory %s: %w", invPath, err)
	}

	engine, err := internal.NewEngine(logger, inv, config.Rules)
	if err != nil {
		return nil, err
	}
	if config.Workers > 0 {
		engine.SetWorkers(config.Workers)
	}
	return engine, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}
	return config, nil
}

// Processor runs one path or one word source against engine.
type Processor func(ctx context.Context, engine Engine, target string) ([]tt.Result, error)

// ProcessSources runs every source. A failing source is logged and skipped;
// the results of the others are returned with the joined errors.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources []string,
	processor Processor,
) ([]tt.Result, error) {
	var (
		allResults []tt.Result
		errs       []error
	)
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		results, err := processor(ctx, engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			errs = append(errs, err)
			continue
		}
		allResults = append(allResults, results...)
	}

	return allResults, errors.Join(errs...)
}

// ProcessFiles runs every path. Like ProcessSources it keeps going past a
// failing path and returns what the others produced.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor Processor,
) ([]tt.Result, error) {
	var (
		allResults []tt.Result
		errs       []error
	)
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			errs = append(errs, err)
		}
		allResults = append(allResults, results...)
	}

	return allResults, errors.Join(errs...)
}

// ProcessPath runs a file, or every word file below a directory. Files of a
// directory are processed concurrently, at most Workers() at a time when the
// engine reports it; a failing file does not stop the others and its error
// is returned alongside the other files' results.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor Processor,
) ([]tt.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		results, err := processor(ctx, engine, path)
		if err != nil {
			return []tt.Result{}, err
		}
		return results, nil
	}

	files, err := scanner.New(path, WordsExtension).Paths()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	perFile := make([][]tt.Result, len(files))
	errs := make([]error, len(files))
	bar := newProgressBar(len(files), path)

	// a plain group: one failing file must not cancel its siblings
	var g errgroup.Group
	g.SetLimit(workerLimit(engine))

	var ctxErr error
	for i, filePath := range files {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		g.Go(func() error {
			results, err := processor(ctx, engine, filePath)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				errs[i] = err
			} else {
				perFile[i] = results
			}
			_ = bar.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	_ = bar.Finish()

	// results keep the scanner's path order
	allResults := make([]tt.Result, 0)
	for _, results := range perFile {
		allResults = append(allResults, results...)
	}
	if ctxErr != nil {
		return allResults, ctxErr
	}
	return allResults, errors.Join(errs...)
}

// workerLimit is the engine's configured worker count, or one worker per
// CPU for engines that do not report one.
func workerLimit(engine Engine) int {
	if w, ok := engine.(interface{ Workers() int }); ok && w.Workers() > 0 {
		return w.Workers()
	}
	return runtime.NumCPU()
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func ProcessFile(ctx context.Context, engine Engine, filePath string) ([]tt.Result, error) {
	return engine.RunFileContext(ctx, filePath)
}

func ProcessSource(ctx context.Context, engine Engine, source string) ([]tt.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return engine.RunSource(source)
}

// Matched keeps the results whose pattern matched.
func Matched(results []tt.Result) []tt.Result {
	out := make([]tt.Result, 0, len(results))
	for _, r := range results {
		if r.Match.Matched() {
			out = append(out, r)
		}
	}
	return out
}

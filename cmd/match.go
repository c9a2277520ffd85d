package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/check"
	"github.com/gnoswap-labs/phonomatch/formatter"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
	"github.com/gnoswap-labs/phonomatch/scanner"
)

var (
	ignoreRules     string
	matchWords      []string
	matchJsonOutput bool
	showAll         bool
	outPath         string
)

var matchCmd = &cobra.Command{
	Use:   "match [paths...]",
	Short: "Match word lists against the configured rules",
	Long: `Reads every .words file under the given paths (one word per line) and
applies the rules of the configuration file to each word.
Example) phonomatch match -w "c u p" words/`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && len(matchWords) == 0 {
			fmt.Println("error: Please provide word files, directories or --word")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := check.New(logger, cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		opts := matchOptions{all: showAll, json: matchJsonOutput, jsonOutput: outPath}
		failed, err := runMatch(ctx, logger, engine, args, matchWords, opts, os.Stdout)
		if err != nil {
			logger.Error("Error matching words", zap.Error(err))
			os.Exit(1)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	matchCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	matchCmd.Flags().StringArrayVarP(&matchWords, "word", "w", nil, "Word to match, may be repeated")
	matchCmd.Flags().BoolVar(&matchJsonOutput, "json", false, "Output results in JSON format")
	matchCmd.Flags().BoolVar(&showAll, "all", false, "Also show rules that did not match")
	matchCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

type matchOptions struct {
	all        bool
	json       bool
	jsonOutput string
}

// runMatch prints the results for paths and words. It reports whether a rule
// of error severity matched, along with the errors of inputs that could not
// be read.
func runMatch(
	ctx context.Context,
	logger *zap.Logger,
	engine check.Engine,
	paths []string,
	words []string,
	opts matchOptions,
	w io.Writer,
) (bool, error) {
	for _, path := range paths {
		if !scanner.Exists(path) {
			return false, fmt.Errorf("%s: no such file or directory", path)
		}
	}

	var results []tt.Result
	var errs []error

	if len(paths) > 0 {
		fileResults, err := check.ProcessFiles(ctx, logger, engine, paths, check.ProcessFile)
		if err != nil {
			errs = append(errs, err)
		}
		results = append(results, fileResults...)
	}
	if len(words) > 0 {
		wordResults, err := check.ProcessSources(ctx, logger, engine, words, check.ProcessSource)
		if err != nil {
			errs = append(errs, err)
		}
		results = append(results, wordResults...)
	}

	hits := check.Matched(results)
	if !opts.all {
		results = hits
	}

	// results of the inputs that did run are shown even when others failed
	if err := printResults(results, opts, w); err != nil {
		errs = append(errs, err)
	}

	failed := false
	for _, r := range hits {
		if r.Severity == tt.SeverityError {
			failed = true
			break
		}
	}
	return failed, errors.Join(errs...)
}

func printResults(results []tt.Result, opts matchOptions, w io.Writer) error {
	if !opts.json {
		_, err := io.WriteString(w, formatter.GenerateFormattedResults(results))
		return err
	}

	d, err := formatter.GenerateJSON(results)
	if err != nil {
		return fmt.Errorf("error marshalling results to JSON: %w", err)
	}
	if opts.jsonOutput == "" {
		_, err = fmt.Fprintln(w, string(d))
		return err
	}
	if err := os.WriteFile(opts.jsonOutput, d, 0o644); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}

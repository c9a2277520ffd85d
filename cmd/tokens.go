package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/internal/diag"
	"github.com/gnoswap-labs/phonomatch/internal/lexer"
	"github.com/gnoswap-labs/phonomatch/internal/source"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the tokens of an inventory file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := printTokens(args[0], os.Stdout)
		if err != nil {
			logger.Error("Error reading file", zap.String("file", args[0]), zap.Error(err))
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

// printTokens writes one line per token, then the diagnostics if lexing
// failed anywhere. It reports whether the file lexed cleanly.
func printTokens(path string, w io.Writer) (bool, error) {
	src, err := source.Load(path)
	if err != nil {
		return false, err
	}

	d := diag.New()
	for _, tok := range lexer.Tokenize(src, d) {
		line, col := tok.Span.Position()
		fmt.Fprintf(w, "%d:%d\t%s\n", line, col, tok)
	}

	if d.HasErrors() {
		fmt.Fprintln(w, d.String())
		return false, nil
	}
	return true, nil
}

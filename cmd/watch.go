package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/check"
	"github.com/gnoswap-labs/phonomatch/formatter"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dirs...>",
	Short: "Re-match word files whenever they change",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := check.New(logger, cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		for _, dir := range args {
			engine.WatchDir(dir)
		}
		engine.SetReporter(newWatchReporter(os.Stdout))

		if err := engine.StartWatching(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		fmt.Fprintf(os.Stderr, "watching %d director(ies), press Ctrl+C to stop\n", len(args))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}

// newWatchReporter prints the matched results of each re-run file.
func newWatchReporter(w io.Writer) func(string, []tt.Result, error) {
	var mu sync.Mutex
	return func(filename string, results []tt.Result, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", filename, err)
			return
		}
		hits := check.Matched(results)
		if len(hits) == 0 {
			fmt.Fprintf(w, "%s: no matches\n", filename)
			return
		}
		io.WriteString(w, formatter.GenerateFormattedResults(hits))
	}
}

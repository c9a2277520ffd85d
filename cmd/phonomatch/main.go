package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/cmd"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd.SetLogger(logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultConfigFile = ".phonomatch.yaml"
	defaultTimeout    = 5 * time.Minute
)

var (
	cfgFile string
	timeout time.Duration

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:              "phonomatch [paths...]",
	Short:            "phonomatch - match phoneme patterns against word lists",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: phonomatch [path1 path2 ...] => behaves like the match subcommand
		matchCmd.Run(matchCmd, args)
	},
}

// SetLogger sets the logger every subcommand reports through.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Give up after this long")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(watchCmd)
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/phonomatch/check"
	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

var containsPhoneme string

var classesCmd = &cobra.Command{
	Use:   "classes [inventory]",
	Short: "List the classes of an inventory",
	Long: `Lists every class of an inventory with its members. Without an argument the
inventory of the configuration file is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := inventoryPath(args)
		if err != nil {
			logger.Error("Error locating inventory", zap.Error(err))
			os.Exit(1)
		}

		inv, d, err := inventory.Load(path)
		if err != nil {
			logger.Error("Error reading inventory", zap.String("file", path), zap.Error(err))
			os.Exit(1)
		}
		if d.Len() > 0 {
			fmt.Fprintln(os.Stderr, d.String())
		}
		if d.HasErrors() {
			os.Exit(1)
		}

		if err := printClasses(inv, containsPhoneme, os.Stdout); err != nil {
			logger.Error("Error listing classes", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	classesCmd.Flags().StringVar(&containsPhoneme, "contains", "", "Only list classes containing this phoneme")
}

func inventoryPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	config, err := check.LoadConfig(cfgFile)
	if err != nil {
		return "", err
	}
	if config.Inventory == "" {
		return "", fmt.Errorf("%s: no inventory configured", cfgFile)
	}
	if filepath.IsAbs(config.Inventory) {
		return config.Inventory, nil
	}
	return filepath.Join(filepath.Dir(cfgFile), config.Inventory), nil
}

// printClasses writes one `\Name = members` line per class, in name order.
func printClasses(inv *inventory.Inventory, contains string, w io.Writer) error {
	classes := inv.Classes.Entries()
	if contains != "" {
		term, ok := inv.Terminal(contains)
		if !ok {
			return fmt.Errorf("unknown phoneme %q", contains)
		}
		classes = inv.ClassesContaining(term)
	}

	for _, class := range classes {
		members := class.Members()
		names := make([]string, len(members))
		for i, m := range members {
			if _, isClass := m.(symbol.NonTerminal); isClass {
				names[i] = `\` + m.Desc()
			} else {
				names[i] = m.Desc()
			}
		}
		fmt.Fprintf(w, "\\%s = %s\n", class.Desc(), strings.Join(names, ", "))
	}
	return nil
}

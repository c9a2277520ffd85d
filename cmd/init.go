package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/phonomatch/check"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

const defaultInventoryFile = "inventory.phono"

const starterInventory = `; phonemes of the language, one token each
alphabet a, e, i, o, u, p, t, k, m, n, s

class V = a, e, i, o, u
class Stop = p, t, k
class Nasal = m, n
class C = \Stop, \Nasal, s
`

// initCmd: phonomatch init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file and a starter inventory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = defaultConfigFile
	}

	config := check.Config{
		Name:      "phonomatch",
		Inventory: defaultInventoryFile,
		Rules: []tt.RuleConfig{
			{
				Name: "nasal-stop",
				Pattern: tt.PatternSpec{And: []tt.PatternSpec{
					{Terms: []string{"n"}},
					{Class: "Stop"},
				}},
			},
			{
				Name:     "final-vowel",
				Severity: tt.SeverityInfo,
				Pattern:  tt.PatternSpec{Class: "V"},
			},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return err
	}

	// keep an inventory the user already wrote
	invPath := filepath.Join(filepath.Dir(configurationPath), defaultInventoryFile)
	if _, err := os.Stat(invPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(invPath, []byte(starterInventory), 0o644)
}

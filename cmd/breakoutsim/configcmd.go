package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout-sim/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use after the config file search,
the difficulty preset and flag overrides are applied.

With --defaults, prints the commented default file instead, ready to be
copied to ~/.breakout/configs/breakout.yaml.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// breakoutsim runs the breakout simulation kernel headlessly.
//
// Usage:
//
//	breakoutsim list                  - List built-in levels (and level files with --dir)
//	breakoutsim run <level>           - Simulate a built-in level
//	breakoutsim run --level-file f    - Simulate a level from a YAML file
//	breakoutsim config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Simulation config YAML (default search: ~/.breakout/configs, ./configs)
//	--difficulty <preset> - easy, normal or hard
//	--tick-rate <rate>    - Override simulation.tick_rate
//	--seed <value>        - RNG seed for randomized serves (0 = time based)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-sim/internal/config"
	"github.com/vovakirdan/breakout-sim/internal/core"

	// Import levels to register them
	_ "github.com/vovakirdan/breakout-sim/internal/games/breakout/levels"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagTickRate   int
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakoutsim",
	Short: "Breakout simulation kernel runner",
	Long: `breakoutsim drives the breakout simulation kernel without a screen:
a ball, a paddle and a field of blocks advanced one fixed time step at a time.

Available commands:
  list     - Show built-in levels
  run      - Simulate a level and print a summary
  config   - Print the effective configuration

Examples:
  breakoutsim list
  breakoutsim run reference --ticks 960
  breakoutsim run wall --autopilot --realtime
  breakoutsim run --level-file ./levels/bricks.yaml --dump final.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to simulation config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Override simulation tick rate (ticks per simulated second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	}), nil
}

// loadConfig resolves the configuration from file, preset and flag overrides.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	if flagTickRate != 0 {
		cfg.Simulation.TickRate = flagTickRate
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig derives what level factories see.
func runtimeConfig(cfg config.BreakoutConfig) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		TickRate: cfg.Simulation.TickRate,
		Seed:     seed,
	}
}

// critters is a terminal simulation of competing critter species on a grid.
//
// Usage:
//
//	critters species          - List available species
//	critters run              - Run a world headless and print the result
//	critters watch            - Watch a world evolve in the terminal
//	critters history          - Show recorded runs
//	critters menu             - Pick a scenario from a menu
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - World config YAML
//	--db <path>         - Set database path (default: ~/.critters/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import species to register them
	_ "github.com/vovakirdan/critters/internal/species/bear"
	_ "github.com/vovakirdan/critters/internal/species/flytrap"
	_ "github.com/vovakirdan/critters/internal/species/food"
	_ "github.com/vovakirdan/critters/internal/species/giant"
	_ "github.com/vovakirdan/critters/internal/species/lion"
	_ "github.com/vovakirdan/critters/internal/species/stone"
	_ "github.com/vovakirdan/critters/internal/species/wanderer"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "critters",
	Short: "Critters - competing species on a grid",
	Long: `Critters simulates species of small creatures on a rectangular board.
Every turn each critter looks at its four neighbors and decides to turn,
hop forward or infect the critter in front, converting it to its own kind.

Available commands:
  species  - Show all available species
  run      - Run a world headless and print the final populations
  watch    - Watch a world evolve in the terminal
  history  - Show recorded runs
  menu     - Pick a scenario from a menu and watch it

Examples:
  critters species
  critters run --turns 500 --seed 42
  critters watch --preset duel
  critters history -i`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = newLogger(os.Stderr, level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.critters/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(menuCmd)
}

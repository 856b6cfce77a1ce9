// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner play                 - Pick a runner and play
//	runner play -c trump        - Play a runner directly
//	runner characters           - List the roster and their powers
//	runner scores               - Show the best runs
//	runner serve                - Start SSH server for remote play
//	runner sim                  - Run the autopilot headless
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.runner/runner.db)
//	--config <path>       - Load a custom runner.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is a three-lane endless runner played in the terminal.
Dodge reporters, subpoenas and news vans, collect coins and use your
runner's power at the right moment.

Available commands:
  play        - Pick a runner and play
  characters  - List the roster and their powers
  scores      - View the best runs
  serve       - Start SSH server for remote play
  sim         - Run the autopilot headless

Examples:
  runner play
  runner play --character putin --difficulty hard
  runner scores --character modi
  runner serve --ssh :2222
  runner sim --ticks 20000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

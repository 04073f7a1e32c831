// hueguess is a terminal color-guessing game: each round shows a target
// color and a handful of near-identical decoys, and you score a point
// for picking the right one.
//
// Usage:
//
//	hueguess play            - Play in the current terminal
//	hueguess round           - Deal a single round to stdout
//	hueguess serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible rounds
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hueguess",
	Short: "Hue Guess - a color-matching game for your terminal",
	Long: `Hue Guess shows you a target color and six candidates within a few
degrees of hue of each other. Pick the one that matches the target
exactly to score a point; a miss keeps the round alive so you can
try again.

Available commands:
  play     - Play in the current terminal
  round    - Deal a single round to stdout
  serve    - Start SSH server for remote play

Examples:
  hueguess play
  hueguess play --seed 42
  hueguess round --seed 42
  hueguess serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(serveCmd)
}

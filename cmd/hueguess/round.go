package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mavrk/hueguess/internal/config"
	"github.com/mavrk/hueguess/internal/game"
)

var flagReveal bool

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Deal a single round to stdout",
	Long: `Generate one round and print its candidates without starting the TUI.
Useful for inspecting generation, and deterministic with --seed.

Examples:
  hueguess round
  hueguess round --seed 42
  hueguess round --seed 42 --reveal`,
	Run: runRound,
}

func init() {
	roundCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Mark the target in the output")
}

func runRound(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(cfg.Params(), seed)
	round := session.Round()

	fmt.Printf("Base hue: %.1f\n", round.BaseHue)
	fmt.Printf("Target:   %s  %s\n", round.Target.HSL(), round.Target.Hex())
	fmt.Println()
	fmt.Printf("  %-3s  %-22s  %s\n", "#", "HSL", "Hex")
	fmt.Printf("  %-3s  %-22s  %s\n", "-", "---", "---")

	for i, c := range round.Options {
		marker := ""
		if flagReveal && c == round.Target {
			marker = "  <- target"
		}
		fmt.Printf("  %-3d  %-22s  %s%s\n", i+1, c.HSL(), c.Hex(), marker)
	}
}

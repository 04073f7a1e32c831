package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mavrk/hueguess/internal/config"
	"github.com/mavrk/hueguess/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Left/Right or h/l  - Move between swatches
  1-6                - Pick a swatch directly
  Enter/Space        - Guess the highlighted swatch
  n                  - Skip to a new round
  r                  - Reset the session (score back to 0)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Examples:
  hueguess play
  hueguess play --seed 42
  hueguess play --config ./my-config.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Warn early if the terminal is too narrow for six swatches;
	// Bubble Tea handles resizes from here on.
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w < 10*cfg.Round.Options {
		fmt.Fprintln(os.Stderr, "Warning: terminal is narrow, swatches may wrap")
	}

	if err := tui.Run(cfg, flagSeed); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

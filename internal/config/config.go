// Package config provides YAML-based configuration loading for the
// hueguess platform.
package config

import (
	"fmt"

	"github.com/mavrk/hueguess/internal/game"
)

// GameConfig contains all configuration for the color-guessing game.
type GameConfig struct {
	Palette PaletteConfig `yaml:"palette"`
	Round   RoundConfig   `yaml:"round"`
	UI      UIConfig      `yaml:"ui"`
}

// PaletteConfig defines the color generation ranges.
type PaletteConfig struct {
	HueSpread     float64 `yaml:"hue_spread"`     // Max decoy hue offset in degrees
	SaturationMin float64 `yaml:"saturation_min"` // Percent, inclusive
	SaturationMax float64 `yaml:"saturation_max"` // Percent, exclusive
	LightnessMin  float64 `yaml:"lightness_min"`  // Percent, inclusive
	LightnessMax  float64 `yaml:"lightness_max"`  // Percent, exclusive
}

// RoundConfig defines round structure parameters.
type RoundConfig struct {
	Options int `yaml:"options"` // Candidates per round, including the target
}

// UIConfig defines presentation-layer behavior.
type UIConfig struct {
	FeedbackDelayMs int  `yaml:"feedback_delay_ms"` // Pause before auto-advancing after a correct guess
	ShowLabel       bool `yaml:"show_label"`        // Show the target's hsl(...) caption
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	if c.Round.Options < 2 {
		return fmt.Errorf("config: round.options must be at least 2, got %d", c.Round.Options)
	}
	if c.Palette.HueSpread <= 0 || c.Palette.HueSpread > 180 {
		return fmt.Errorf("config: palette.hue_spread must be in (0, 180], got %v", c.Palette.HueSpread)
	}
	if c.Palette.SaturationMin < 0 || c.Palette.SaturationMax > 100 ||
		c.Palette.SaturationMin >= c.Palette.SaturationMax {
		return fmt.Errorf("config: palette saturation range [%v, %v) is invalid",
			c.Palette.SaturationMin, c.Palette.SaturationMax)
	}
	if c.Palette.LightnessMin < 0 || c.Palette.LightnessMax > 100 ||
		c.Palette.LightnessMin >= c.Palette.LightnessMax {
		return fmt.Errorf("config: palette lightness range [%v, %v) is invalid",
			c.Palette.LightnessMin, c.Palette.LightnessMax)
	}
	if c.UI.FeedbackDelayMs < 0 {
		return fmt.Errorf("config: ui.feedback_delay_ms must not be negative, got %d", c.UI.FeedbackDelayMs)
	}
	return nil
}

// Params converts the configuration into engine generation parameters.
func (c GameConfig) Params() game.Params {
	return game.Params{
		OptionCount: c.Round.Options,
		HueSpread:   c.Palette.HueSpread,
		SatMin:      c.Palette.SaturationMin,
		SatMax:      c.Palette.SaturationMax,
		LightMin:    c.Palette.LightnessMin,
		LightMax:    c.Palette.LightnessMax,
	}
}

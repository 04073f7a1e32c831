package config

import (
	_ "embed"
)

//go:embed defaults/hueguess.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Palette: PaletteConfig{
			HueSpread:     15,
			SaturationMin: 70,
			SaturationMax: 100,
			LightnessMin:  45,
			LightnessMax:  65,
		},
		Round: RoundConfig{
			Options: 6,
		},
		UI: UIConfig{
			FeedbackDelayMs: 900,
			ShowLabel:       true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML configuration.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := `
palette:
  hue_spread: 10
  saturation_min: 60
  saturation_max: 90
  lightness_min: 40
  lightness_max: 60
round:
  options: 4
ui:
  feedback_delay_ms: 500
  show_label: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Palette.HueSpread != 10 {
		t.Errorf("hue_spread: expected 10, got %v", cfg.Palette.HueSpread)
	}
	if cfg.Round.Options != 4 {
		t.Errorf("options: expected 4, got %d", cfg.Round.Options)
	}
	if cfg.UI.FeedbackDelayMs != 500 {
		t.Errorf("feedback_delay_ms: expected 500, got %d", cfg.UI.FeedbackDelayMs)
	}
	if cfg.UI.ShowLabel {
		t.Error("show_label: expected false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	// Parses fine but fails validation: only one option per round.
	content := `
palette:
  hue_spread: 15
  saturation_min: 70
  saturation_max: 100
  lightness_min: 45
  lightness_max: 65
round:
  options: 1
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a config with a single option")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Keep a real ~/.hueguess/config.yaml from leaking into the test.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := DefaultGameConfig()
	if cfg != want {
		t.Errorf("embedded default %+v differs from hardcoded default %+v", cfg, want)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GameConfig)
		valid  bool
	}{
		{"default", func(*GameConfig) {}, true},
		{"two options", func(c *GameConfig) { c.Round.Options = 2 }, true},
		{"one option", func(c *GameConfig) { c.Round.Options = 1 }, false},
		{"zero spread", func(c *GameConfig) { c.Palette.HueSpread = 0 }, false},
		{"huge spread", func(c *GameConfig) { c.Palette.HueSpread = 200 }, false},
		{"inverted saturation", func(c *GameConfig) { c.Palette.SaturationMin = 90; c.Palette.SaturationMax = 80 }, false},
		{"lightness above 100", func(c *GameConfig) { c.Palette.LightnessMax = 120 }, false},
		{"negative delay", func(c *GameConfig) { c.UI.FeedbackDelayMs = -1 }, false},
	}

	for _, tc := range cases {
		cfg := DefaultGameConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestParamsConversion(t *testing.T) {
	p := DefaultGameConfig().Params()

	if p.OptionCount != 6 {
		t.Errorf("OptionCount: expected 6, got %d", p.OptionCount)
	}
	if p.HueSpread != 15 {
		t.Errorf("HueSpread: expected 15, got %v", p.HueSpread)
	}
	if p.SatMin != 70 || p.SatMax != 100 {
		t.Errorf("saturation range: expected [70, 100), got [%v, %v)", p.SatMin, p.SatMax)
	}
	if p.LightMin != 45 || p.LightMax != 65 {
		t.Errorf("lightness range: expected [45, 65), got [%v, %v)", p.LightMin, p.LightMax)
	}
}

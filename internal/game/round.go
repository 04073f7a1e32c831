package game

import "math/rand"

// Status represents the resolution state of a round.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
)

// Round is one target-plus-candidates presented to the player.
// Options always contains Target exactly once, has no exact duplicates
// and is randomly ordered.
type Round struct {
	BaseHue float64
	Target  Color
	Options []Color
	Status  Status
}

// Params tunes round generation. Zero values are not usable; start from
// DefaultParams and override.
type Params struct {
	OptionCount int     // Total candidates per round, including the target
	HueSpread   float64 // Max decoy hue offset from the base hue, degrees
	SatMin      float64
	SatMax      float64
	LightMin    float64
	LightMax    float64
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		OptionCount: 6,
		HueSpread:   15,
		SatMin:      SaturationMin,
		SatMax:      SaturationMax,
		LightMin:    LightnessMin,
		LightMax:    LightnessMax,
	}
}

// randomColor draws fresh saturation and lightness for the given hue.
func (p Params) randomColor(hue float64, rng *rand.Rand) Color {
	return Color{
		Hue:        hue,
		Saturation: p.SatMin + rng.Float64()*(p.SatMax-p.SatMin),
		Lightness:  p.LightMin + rng.Float64()*(p.LightMax-p.LightMin),
	}
}

// perturbHue returns the base hue shifted by a uniform random offset in
// [-spread, +spread], wrapped into [0, 360).
func perturbHue(base float64, spread float64, rng *rand.Rand) float64 {
	offset := (rng.Float64()*2 - 1) * spread
	return wrapHue(base + offset)
}

// newRound generates a fresh pending round: a uniformly random base hue,
// a target derived from it, and OptionCount-1 distinct decoys near it.
// Exact-triple collisions are simply redrawn; with float64 components
// they are effectively impossible, but the invariant is cheap to hold.
func newRound(rng *rand.Rand, p Params) Round {
	base := rng.Float64() * 360
	target := p.randomColor(base, rng)

	options := make([]Color, 0, p.OptionCount)
	options = append(options, target)
	for len(options) < p.OptionCount {
		decoy := p.randomColor(perturbHue(base, p.HueSpread, rng), rng)
		if containsColor(options, decoy) {
			continue
		}
		options = append(options, decoy)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Round{
		BaseHue: base,
		Target:  target,
		Options: options,
		Status:  StatusPending,
	}
}

// containsColor checks membership by exact triple equality.
func containsColor(colors []Color, c Color) bool {
	for _, other := range colors {
		if other == c {
			return true
		}
	}
	return false
}

// snapshot returns a copy of the round with its own options slice, so
// callers cannot mutate engine state through the returned value.
func (r Round) snapshot() Round {
	out := r
	out.Options = make([]Color, len(r.Options))
	copy(out.Options, r.Options)
	return out
}

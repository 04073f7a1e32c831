package game

import (
	"math/rand"
	"testing"
)

func TestRoundInvariants(t *testing.T) {
	// Generate many rounds across seeds and check the structural
	// invariants hold for every one of them.
	p := DefaultParams()

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r := newRound(rng, p)

		if len(r.Options) != p.OptionCount {
			t.Fatalf("seed %d: expected %d options, got %d", seed, p.OptionCount, len(r.Options))
		}

		if r.Status != StatusPending {
			t.Errorf("seed %d: new round status is %q, expected pending", seed, r.Status)
		}

		targetCount := 0
		for i, c := range r.Options {
			if c == r.Target {
				targetCount++
			}
			if err := c.Validate(); err != nil {
				t.Errorf("seed %d: option %d is invalid: %v", seed, i, err)
			}
			for j := i + 1; j < len(r.Options); j++ {
				if c == r.Options[j] {
					t.Errorf("seed %d: options %d and %d are duplicates", seed, i, j)
				}
			}
		}
		if targetCount != 1 {
			t.Errorf("seed %d: target appears %d times, expected exactly once", seed, targetCount)
		}
	}
}

func TestRoundDecoyHuesNearBase(t *testing.T) {
	p := DefaultParams()

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r := newRound(rng, p)

		if r.Target.Hue != r.BaseHue {
			t.Errorf("seed %d: target hue %v differs from base hue %v", seed, r.Target.Hue, r.BaseHue)
		}

		for i, c := range r.Options {
			if d := HueDistance(c.Hue, r.BaseHue); d > p.HueSpread {
				t.Errorf("seed %d: option %d hue %v is %v degrees from base %v, max is %v",
					seed, i, c.Hue, d, r.BaseHue, p.HueSpread)
			}
		}
	}
}

func TestRoundComponentRanges(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		r := newRound(rng, p)
		for _, c := range r.Options {
			if c.Saturation < p.SatMin || c.Saturation >= p.SatMax {
				t.Errorf("saturation %v outside [%v, %v)", c.Saturation, p.SatMin, p.SatMax)
			}
			if c.Lightness < p.LightMin || c.Lightness >= p.LightMax {
				t.Errorf("lightness %v outside [%v, %v)", c.Lightness, p.LightMin, p.LightMax)
			}
			if c.Hue < 0 || c.Hue >= 360 {
				t.Errorf("hue %v outside [0, 360)", c.Hue)
			}
		}
	}
}

func TestPerturbHueStaysInSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Base hue 200: perturbed hues must land in [185, 215].
	for i := 0; i < 1000; i++ {
		h := perturbHue(200, 15, rng)
		if h < 185 || h > 215 {
			t.Fatalf("perturbHue(200, 15) produced %v, outside [185, 215]", h)
		}
	}

	// Base hue near zero: perturbed hues must wrap into [0, 360).
	for i := 0; i < 1000; i++ {
		h := perturbHue(5, 15, rng)
		if h < 0 || h >= 360 {
			t.Fatalf("perturbHue(5, 15) produced unwrapped hue %v", h)
		}
		if d := HueDistance(h, 5); d > 15 {
			t.Fatalf("perturbHue(5, 15) produced %v, %v degrees from base", h, d)
		}
	}
}

func TestRandomColorUsesGivenHue(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))

	c := p.randomColor(200, rng)
	if c.Hue != 200 {
		t.Errorf("expected hue 200, got %v", c.Hue)
	}
	if c.Saturation < p.SatMin || c.Saturation >= p.SatMax {
		t.Errorf("saturation %v outside configured range", c.Saturation)
	}
	if c.Lightness < p.LightMin || c.Lightness >= p.LightMax {
		t.Errorf("lightness %v outside configured range", c.Lightness)
	}
}

func TestRoundSnapshotIsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := newRound(rng, DefaultParams())

	snap := r.snapshot()
	snap.Options[0] = Color{Hue: 1, Saturation: 1, Lightness: 1}

	if r.Options[0] == snap.Options[0] {
		t.Error("mutating a snapshot leaked into the original round")
	}
}

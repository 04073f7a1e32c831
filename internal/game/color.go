// Package game implements the color-guessing round engine.
// It contains pure logic with no external dependencies (especially no
// Bubble Tea); the platform layer handles input mapping and rendering.
package game

import (
	"fmt"
	"math"
)

// Color is an HSL triple. Hue is an angle in degrees, saturation and
// lightness are percentages. Two colors are equal only if all three
// components match exactly, so Color values are comparable with ==.
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Generated colors are drawn from these ranges.
const (
	SaturationMin = 70.0
	SaturationMax = 100.0
	LightnessMin  = 45.0
	LightnessMax  = 65.0
)

// Validate reports whether the color is well-formed: all components are
// finite, hue is in [0, 360) and saturation/lightness are in [0, 100].
func (c Color) Validate() error {
	for _, v := range []float64{c.Hue, c.Saturation, c.Lightness} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("game: color component is not finite")
		}
	}
	if c.Hue < 0 || c.Hue >= 360 {
		return fmt.Errorf("game: hue %v out of range [0, 360)", c.Hue)
	}
	if c.Saturation < 0 || c.Saturation > 100 {
		return fmt.Errorf("game: saturation %v out of range [0, 100]", c.Saturation)
	}
	if c.Lightness < 0 || c.Lightness > 100 {
		return fmt.Errorf("game: lightness %v out of range [0, 100]", c.Lightness)
	}
	return nil
}

// HSL returns the CSS-style representation, e.g. "hsl(200, 85%, 50%)".
func (c Color) HSL() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.Hue, c.Saturation, c.Lightness)
}

// RGB converts the color to 8-bit RGB components.
func (c Color) RGB() (r, g, b uint8) {
	h := c.Hue / 360
	s := c.Saturation / 100
	l := c.Lightness / 100

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	rf := hueToRGB(p, q, h+1.0/3)
	gf := hueToRGB(p, q, h)
	bf := hueToRGB(p, q, h-1.0/3)

	return uint8(math.Round(rf * 255)), uint8(math.Round(gf * 255)), uint8(math.Round(bf * 255))
}

// hueToRGB is the helper from the standard HSL to RGB algorithm.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Hex returns the color as a lowercase hex string, e.g. "#ff8800".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HueDistance returns the circular distance between two hues in degrees.
// The result is always in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(wrapHue(a) - wrapHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// wrapHue normalizes a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

package raster

import (
	"image/color"
)

// Shade scales the colour channels of c by factor, keeping alpha. Factors
// below 1 darken.
func Shade(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(float64(c.R)*factor, 0, 255)),
		G: uint8(clamp(float64(c.G)*factor, 0, 255)),
		B: uint8(clamp(float64(c.B)*factor, 0, 255)),
		A: c.A,
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

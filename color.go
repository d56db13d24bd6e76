package matcolor

import (
	"image/color"

	icolor "github.com/gogpu/matcolor/internal/color"
)

// RGBA represents a color in linear light with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
//
// RGBA values produced by DecodeHex always carry A == 1.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque linear color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Tuple returns the components in (r, g, b, a) order.
func (c RGBA) Tuple() (r, g, b, a float64) {
	return c.R, c.G, c.B, c.A
}

// SRGB re-encodes the color for display as 8-bit sRGB.
// Alpha is linear and only quantized.
func (c RGBA) SRGB() color.NRGBA {
	return color.NRGBA{
		R: icolor.LinearToSRGB8(c.R),
		G: icolor.LinearToSRGB8(c.G),
		B: icolor.LinearToSRGB8(c.B),
		A: icolor.Quantize(c.A),
	}
}

// Color converts RGBA to the standard color.Color interface.
// The returned color is gamma encoded, as image.Image expects.
func (c RGBA) Color() color.Color {
	return c.SRGB()
}

// Hex returns the sRGB hex form of the color, e.g. "#66c2a5".
func (c RGBA) Hex() string {
	s := c.SRGB()
	return SRGB8{R: s.R, G: s.G, B: s.B}.Hex()
}

// SRGBToLinear converts one sRGB-encoded channel in [0, 1] to linear light.
// Input outside [0, 1] is not rejected.
func SRGBToLinear(c float64) float64 {
	return icolor.SRGBToLinear(c)
}

// LinearToSRGB is the inverse of SRGBToLinear.
func LinearToSRGB(l float64) float64 {
	return icolor.LinearToSRGB(l)
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

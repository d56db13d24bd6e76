// Package color implements the sRGB transfer functions used to turn
// gamma-encoded palette colors into linear light.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - IEC 61966-2-1:1999, section 5.2
package color

import "math"

// srgbThreshold is the encoded value where the sRGB EOTF switches from the
// linear segment to the power curve.
const srgbThreshold = 0.04045

// linearThreshold is the matching break point of the inverse curve.
const linearThreshold = 0.0031308

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// The meaningful domain is [0,1]. Values outside it are not rejected and
// follow the same two branches.
func SRGBToLinear(s float64) float64 {
	if s <= srgbThreshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= linearThreshold {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Quantize maps a [0,1] value to a byte with rounding, clamping out-of-range input.
func Quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

package color

// sRGB8ToLinearLUT holds SRGBToLinear(i/255) for every 8-bit channel value.
// Entries are computed with the same float64 formula, so a lookup is
// bit-identical to calling SRGBToLinear directly.
var sRGB8ToLinearLUT [256]float64

func init() {
	for i := 0; i < 256; i++ {
		sRGB8ToLinearLUT[i] = SRGBToLinear(float64(i) / 255.0)
	}
}

// SRGB8ToLinear converts an 8-bit sRGB channel to linear light.
//
// Example:
//
//	r := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float64 {
	return sRGB8ToLinearLUT[s]
}

// LinearToSRGB8 converts a linear value to an 8-bit sRGB channel with
// rounding. Input is clamped to [0.0, 1.0].
//
// Example:
//
//	s := LinearToSRGB8(0.5) // 188 (not 128!)
func LinearToSRGB8(l float64) uint8 {
	return Quantize(LinearToSRGB(l))
}

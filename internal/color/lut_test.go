package color

import "testing"

// TestSRGB8ToLinearExact tests that the table is bit-identical to the formula.
func TestSRGB8ToLinearExact(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := SRGBToLinear(float64(i) / 255.0)
		if got := SRGB8ToLinear(uint8(i)); got != want {
			t.Errorf("SRGB8ToLinear(%d) = %v, want %v", i, got, want)
		}
	}
}

// TestSRGB8RoundTrip tests that sRGB → Linear → sRGB preserves values.
func TestSRGB8RoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		result := LinearToSRGB8(SRGB8ToLinear(uint8(i)))
		diff := int(result) - i
		if diff != 0 {
			t.Errorf("round trip %d → %d (error=%d)", i, result, diff)
		}
	}
}

func TestLinearToSRGB8Clamps(t *testing.T) {
	if got := LinearToSRGB8(-0.25); got != 0 {
		t.Errorf("LinearToSRGB8(-0.25) = %d, want 0", got)
	}
	if got := LinearToSRGB8(3); got != 255 {
		t.Errorf("LinearToSRGB8(3) = %d, want 255", got)
	}
	if got := LinearToSRGB8(0.5); got != 188 {
		t.Errorf("LinearToSRGB8(0.5) = %d, want 188", got)
	}
}

func BenchmarkSRGBToLinear_MathPow(b *testing.B) {
	var result float64
	for i := 0; i < b.N; i++ {
		result = SRGBToLinear(128.0 / 255.0)
	}
	_ = result
}

func BenchmarkSRGB8ToLinear_LUT(b *testing.B) {
	var result float64
	for i := 0; i < b.N; i++ {
		result = SRGB8ToLinear(128)
	}
	_ = result
}

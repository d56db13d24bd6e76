package matcolor

import (
	"errors"
	"fmt"

	icolor "github.com/gogpu/matcolor/internal/color"
)

// ErrMalformedHex is returned, wrapped in a *HexError, for any string that
// is not a 6-digit hex color.
var ErrMalformedHex = errors.New("matcolor: malformed hex color")

// HexError describes why a hex color string was rejected.
type HexError struct {
	Input  string
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("matcolor: malformed hex color %q: %s", e.Input, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMalformedHex) work.
func (e *HexError) Unwrap() error { return ErrMalformedHex }

// SRGB8 is a gamma-encoded 8-bit color as written in a hex string.
type SRGB8 struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c SRGB8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Linear converts the color to linear light with alpha 1.
func (c SRGB8) Linear() RGBA {
	return RGBA{
		R: icolor.SRGB8ToLinear(c.R),
		G: icolor.SRGB8ToLinear(c.G),
		B: icolor.SRGB8ToLinear(c.B),
		A: 1.0,
	}
}

// ParseHex parses "RRGGBB" or "#RRGGBB" (either case) into an SRGB8.
// Exactly one leading '#' is stripped; anything but six hex digits
// afterwards is an error.
func ParseHex(hex string) (SRGB8, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return SRGB8{}, &HexError{Input: hex, Reason: fmt.Sprintf("want 6 hex digits, got %d characters", len(s))}
	}

	var c SRGB8
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, ok := parseByte(s[2*i : 2*i+2])
		if !ok {
			return SRGB8{}, &HexError{Input: hex, Reason: fmt.Sprintf("invalid digit in %q", s[2*i:2*i+2])}
		}
		*dst = v
	}
	return c, nil
}

// DecodeHex decodes an sRGB hex color into linear RGBA with alpha 1.
//
// Example:
//
//	c, err := matcolor.DecodeHex("#FFD43B") // ≈ (1.0, 0.658, 0.0437, 1.0)
func DecodeHex(hex string) (RGBA, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return c.Linear(), nil
}

// MustDecodeHex is like DecodeHex but panics on malformed input.
// Use it only for compiled-in literals.
func MustDecodeHex(hex string) RGBA {
	c, err := DecodeHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseByte parses two hex digits.
func parseByte(s string) (uint8, bool) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case '0' <= c && c <= '9':
			v |= c - '0'
		case 'a' <= c && c <= 'f':
			v |= c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v |= c - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}

package pigment

import (
	"fmt"
	"strings"
)

// ParseHex parses a hex color string like "#eb6f92" into an 8-bit Rgb
// color. The leading # is optional.
func ParseHex(s string) (Rgb[uint8], error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Rgb[uint8]{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Rgb[uint8]{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Rgb[uint8]{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Rgb[T]) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", ToUint8(c.R), ToUint8(c.G), ToUint8(c.B))
}

// HexBare returns the color as a hex string without leading #.
func (c Rgb[T]) HexBare() string {
	return strings.TrimPrefix(c.Hex(), "#")
}

// CSS returns the color in rgb() function format, e.g. "rgb(235, 111, 146)".
func (c Rgb[T]) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", ToUint8(c.R), ToUint8(c.G), ToUint8(c.B))
}

// HexAlpha returns an alpha-augmented Rgb color as a #rrggbbaa hex string.
func HexAlpha[T Channel](c Alpha[T, Rgb[T]]) string {
	return fmt.Sprintf("%s%02x", c.C.Hex(), ToUint8(c.A))
}

// String implements fmt.Stringer for diagnostics.
func (c Rgb[T]) String() string {
	return fmt.Sprintf("rgb(%v, %v, %v)", c.R, c.G, c.B)
}

// String implements fmt.Stringer for diagnostics.
func (c Hsv[T]) String() string {
	return fmt.Sprintf("hsv(%v°, %v, %v)", c.H, c.S, c.V)
}

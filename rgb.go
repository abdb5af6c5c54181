package pigment

import "math"

// Rgb is an additive color with red, green, and blue components in the
// channel encoding T. There is no implied transfer function; see Srgb for
// the gamma-encoded variant.
type Rgb[T Channel] struct {
	R, G, B T
}

// Rg is a two-component slice of a color, produced by the two-component
// swizzle accessors.
type Rg[T Channel] struct {
	R, G T
}

// NewRgb returns an Rgb color from three channel values.
func NewRgb[T Channel](r, g, b T) Rgb[T] {
	return Rgb[T]{R: r, G: g, B: b}
}

// RgbFromPacked unpacks a 0xRRGGBB value into an 8-bit Rgb color. The top
// byte is ignored.
func RgbFromPacked(v uint32) Rgb[uint8] {
	return Rgb[uint8]{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Clamp limits every component to the range [lo, hi].
func (c Rgb[T]) Clamp(lo, hi T) Rgb[T] {
	return Rgb[T]{
		R: ClampChannel(c.R, lo, hi),
		G: ClampChannel(c.G, lo, hi),
		B: ClampChannel(c.B, lo, hi),
	}
}

// ClampEach limits each component between the matching components of lo
// and hi.
func (c Rgb[T]) ClampEach(lo, hi Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: ClampChannel(c.R, lo.R, hi.R),
		G: ClampChannel(c.G, lo.G, hi.G),
		B: ClampChannel(c.B, lo.B, hi.B),
	}
}

// Invert inverts every component against the encoding's maximum.
func (c Rgb[T]) Invert() Rgb[T] {
	return Rgb[T]{
		R: InvertChannel(c.R),
		G: InvertChannel(c.G),
		B: InvertChannel(c.B),
	}
}

// Mix linearly interpolates toward other by t, component-wise.
func (c Rgb[T]) Mix(other Rgb[T], t T) Rgb[T] {
	return Rgb[T]{
		R: MixChannel(c.R, other.R, t),
		G: MixChannel(c.G, other.G, t),
		B: MixChannel(c.B, other.B, t),
	}
}

// Add adds component-wise. Integer encodings wrap; use SaturatingAdd to
// clamp instead.
func (c Rgb[T]) Add(other Rgb[T]) Rgb[T] {
	return Rgb[T]{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Sub subtracts component-wise. Integer encodings wrap; use SaturatingSub
// to clamp instead.
func (c Rgb[T]) Sub(other Rgb[T]) Rgb[T] {
	return Rgb[T]{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Mul multiplies component-wise, treating both operands as normalized
// fractions. Multiplying by white is the identity.
func (c Rgb[T]) Mul(other Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: NormalizedMul(c.R, other.R),
		G: NormalizedMul(c.G, other.G),
		B: NormalizedMul(c.B, other.B),
	}
}

// Div divides component-wise, treating both operands as normalized
// fractions.
func (c Rgb[T]) Div(other Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: NormalizedDiv(c.R, other.R),
		G: NormalizedDiv(c.G, other.G),
		B: NormalizedDiv(c.B, other.B),
	}
}

// MulScalar multiplies every component by s using raw channel arithmetic.
func (c Rgb[T]) MulScalar(s T) Rgb[T] {
	return Rgb[T]{R: c.R * s, G: c.G * s, B: c.B * s}
}

// DivScalar divides every component by s using raw channel arithmetic.
func (c Rgb[T]) DivScalar(s T) Rgb[T] {
	return Rgb[T]{R: c.R / s, G: c.G / s, B: c.B / s}
}

// SaturatingAdd adds component-wise, clamping at the encoding's maximum.
func (c Rgb[T]) SaturatingAdd(other Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: SaturatingAdd(c.R, other.R),
		G: SaturatingAdd(c.G, other.G),
		B: SaturatingAdd(c.B, other.B),
	}
}

// SaturatingSub subtracts component-wise, clamping at zero.
func (c Rgb[T]) SaturatingSub(other Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: SaturatingSub(c.R, other.R),
		G: SaturatingSub(c.G, other.G),
		B: SaturatingSub(c.B, other.B),
	}
}

// SaturateRgb clamps every component of a float-encoded color to [0, 1].
func SaturateRgb[T FloatChannel](c Rgb[T]) Rgb[T] {
	return Rgb[T]{R: Saturate(c.R), G: Saturate(c.G), B: Saturate(c.B)}
}

// Components returns the components in r, g, b order.
func (c Rgb[T]) Components() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Component returns the component at index i (0 = r, 1 = g, 2 = b).
func (c Rgb[T]) Component(i int) T {
	return c.Components()[i]
}

// Permute returns the color reordered by component indices. Permute(2, 1, 0)
// is equivalent to BGR.
func (c Rgb[T]) Permute(i, j, k int) Rgb[T] {
	s := c.Components()
	return Rgb[T]{R: s[i], G: s[j], B: s[k]}
}

// Two-component swizzles.

func (c Rgb[T]) RG() Rg[T] { return Rg[T]{R: c.R, G: c.G} }
func (c Rgb[T]) RB() Rg[T] { return Rg[T]{R: c.R, G: c.B} }
func (c Rgb[T]) GR() Rg[T] { return Rg[T]{R: c.G, G: c.R} }
func (c Rgb[T]) GB() Rg[T] { return Rg[T]{R: c.G, G: c.B} }
func (c Rgb[T]) BR() Rg[T] { return Rg[T]{R: c.B, G: c.R} }
func (c Rgb[T]) BG() Rg[T] { return Rg[T]{R: c.B, G: c.G} }

// Three-component swizzles.

func (c Rgb[T]) RGB() Rgb[T] { return c }
func (c Rgb[T]) RBG() Rgb[T] { return Rgb[T]{R: c.R, G: c.B, B: c.G} }
func (c Rgb[T]) BGR() Rgb[T] { return Rgb[T]{R: c.B, G: c.G, B: c.R} }
func (c Rgb[T]) BRG() Rgb[T] { return Rgb[T]{R: c.B, G: c.R, B: c.G} }
func (c Rgb[T]) GRB() Rgb[T] { return Rgb[T]{R: c.G, G: c.R, B: c.B} }
func (c Rgb[T]) GBR() Rgb[T] { return Rgb[T]{R: c.G, G: c.B, B: c.R} }

// ConvertRgb converts a color between channel encodings component-wise.
func ConvertRgb[To, From Channel](c Rgb[From]) Rgb[To] {
	return Rgb[To]{
		R: ConvertChannel[To](c.R),
		G: ConvertChannel[To](c.G),
		B: ConvertChannel[To](c.B),
	}
}

// RgbToHsv converts an Rgb color in any encoding to Hsv in a float
// encoding. The conversion runs at float64 precision internally. An
// achromatic input (all components equal) maps to hue 0 and saturation 0.
func RgbToHsv[To FloatChannel, From Channel](c Rgb[From]) Hsv[To] {
	r, g, b := ToFloat64(c.R), ToFloat64(c.G), ToFloat64(c.B)

	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	chroma := mx - mn

	if chroma == 0 {
		return Hsv[To]{H: 0, S: 0, V: ConvertChannel[To](mx)}
	}

	// Sector by the largest component; ties resolve r, then g, then b.
	var h float64
	switch mx {
	case r:
		h = math.Mod((g-b)/chroma, 6)
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return Hsv[To]{
		H: To(h),
		S: ConvertChannel[To](chroma / mx),
		V: ConvertChannel[To](mx),
	}
}

// HsvFromPacked converts a 0xRRGGBB value directly to Hsv.
func HsvFromPacked[To FloatChannel](v uint32) Hsv[To] {
	return RgbToHsv[To](RgbFromPacked(v))
}

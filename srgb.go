package pigment

import "math"

// Srgb is a gamma-encoded RGB color using the sRGB transfer function.
// It carries the same component layout as Rgb but tags the values as
// non-linear; convert through SrgbToLinear before doing light math on it.
// There is no direct Srgb↔Hsv conversion.
type Srgb[T Channel] struct {
	R, G, B T
}

// NewSrgb returns an Srgb color from three gamma-encoded channel values.
func NewSrgb[T Channel](r, g, b T) Srgb[T] {
	return Srgb[T]{R: r, G: g, B: b}
}

// WithAlpha attaches an opacity channel to an Srgb color.
func (c Srgb[T]) WithAlpha(a T) Alpha[T, Srgb[T]] {
	return Alpha[T, Srgb[T]]{C: c, A: a}
}

// Clamp limits every component to the range [lo, hi].
func (c Srgb[T]) Clamp(lo, hi T) Srgb[T] {
	return Srgb[T]{
		R: ClampChannel(c.R, lo, hi),
		G: ClampChannel(c.G, lo, hi),
		B: ClampChannel(c.B, lo, hi),
	}
}

// ClampEach limits each component between the matching components of lo
// and hi.
func (c Srgb[T]) ClampEach(lo, hi Srgb[T]) Srgb[T] {
	return Srgb[T]{
		R: ClampChannel(c.R, lo.R, hi.R),
		G: ClampChannel(c.G, lo.G, hi.G),
		B: ClampChannel(c.B, lo.B, hi.B),
	}
}

// Invert inverts every component against the encoding's maximum.
func (c Srgb[T]) Invert() Srgb[T] {
	return Srgb[T]{
		R: InvertChannel(c.R),
		G: InvertChannel(c.G),
		B: InvertChannel(c.B),
	}
}

// Mix linearly interpolates toward other by t, component-wise. Note that
// interpolating gamma-encoded values is not a linear-light blend.
func (c Srgb[T]) Mix(other Srgb[T], t T) Srgb[T] {
	return Srgb[T]{
		R: MixChannel(c.R, other.R, t),
		G: MixChannel(c.G, other.G, t),
		B: MixChannel(c.B, other.B, t),
	}
}

// ConvertSrgb converts a color between channel encodings component-wise.
func ConvertSrgb[To, From Channel](c Srgb[From]) Srgb[To] {
	return Srgb[To]{
		R: ConvertChannel[To](c.R),
		G: ConvertChannel[To](c.G),
		B: ConvertChannel[To](c.B),
	}
}

// SrgbToLinear decodes a gamma-encoded color into linear Rgb.
func SrgbToLinear[To, From Channel](c Srgb[From]) Rgb[To] {
	return Rgb[To]{
		R: ConvertChannel[To](srgbDecode(ToFloat64(c.R))),
		G: ConvertChannel[To](srgbDecode(ToFloat64(c.G))),
		B: ConvertChannel[To](srgbDecode(ToFloat64(c.B))),
	}
}

// LinearToSrgb encodes a linear Rgb color with the sRGB transfer function.
func LinearToSrgb[To, From Channel](c Rgb[From]) Srgb[To] {
	return Srgb[To]{
		R: ConvertChannel[To](srgbEncode(ToFloat64(c.R))),
		G: ConvertChannel[To](srgbEncode(ToFloat64(c.G))),
		B: ConvertChannel[To](srgbEncode(ToFloat64(c.B))),
	}
}

// srgbDecode converts a single sRGB component in [0,1] to linear light.
func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// srgbEncode converts a single linear component in [0,1] to sRGB.
func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

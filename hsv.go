package pigment

import "math"

// Hsv is a color in the hue/saturation/value representation. H is an angle
// in degrees, conventionally in [0, 360) with red at 0; S and V are
// normalized channel values. Hue requires a float encoding.
//
// When S is zero the color is achromatic and H carries no information;
// conversions produce H = 0 in that case.
type Hsv[T FloatChannel] struct {
	H, S, V T
}

// NewHsv returns an Hsv color from a hue in degrees and normalized
// saturation and value.
func NewHsv[T FloatChannel](h, s, v T) Hsv[T] {
	return Hsv[T]{H: h, S: s, V: v}
}

// Clamp limits every component, hue included, to the range [lo, hi].
func (c Hsv[T]) Clamp(lo, hi T) Hsv[T] {
	return Hsv[T]{
		H: ClampChannel(c.H, lo, hi),
		S: ClampChannel(c.S, lo, hi),
		V: ClampChannel(c.V, lo, hi),
	}
}

// ClampEach limits each component between the matching components of lo
// and hi.
func (c Hsv[T]) ClampEach(lo, hi Hsv[T]) Hsv[T] {
	return Hsv[T]{
		H: ClampChannel(c.H, lo.H, hi.H),
		S: ClampChannel(c.S, lo.S, hi.S),
		V: ClampChannel(c.V, lo.V, hi.V),
	}
}

// Invert rotates the hue by 180° and inverts saturation and value. A hue
// rotation, not an arithmetic inversion, is the perceptual inverse.
func (c Hsv[T]) Invert() Hsv[T] {
	return Hsv[T]{
		H: InvertDegrees(c.H),
		S: InvertChannel(c.S),
		V: InvertChannel(c.V),
	}
}

// Mix linearly interpolates toward other by t, component-wise. Hue is
// interpolated as a plain number; it does not take the short way around
// the circle.
func (c Hsv[T]) Mix(other Hsv[T], t T) Hsv[T] {
	return Hsv[T]{
		H: MixChannel(c.H, other.H, t),
		S: MixChannel(c.S, other.S, t),
		V: MixChannel(c.V, other.V, t),
	}
}

// Normalize wraps the hue into [0, 360) and clamps saturation and value to
// [0, 1].
func (c Hsv[T]) Normalize() Hsv[T] {
	return Hsv[T]{
		H: NormalizeDegrees(c.H),
		S: Saturate(c.S),
		V: Saturate(c.V),
	}
}

// ConvertHsv converts a color between float channel encodings. The hue is
// converted as a plain angle, not rescaled.
func ConvertHsv[To, From FloatChannel](c Hsv[From]) Hsv[To] {
	return Hsv[To]{
		H: To(c.H),
		S: ConvertChannel[To](c.S),
		V: ConvertChannel[To](c.V),
	}
}

// HsvToRgb converts an Hsv color to Rgb in any encoding.
//
// The algorithm runs at float64 precision and re-encodes through the
// source float precision, so converting an Hsv[float32] to Rgb[uint8]
// reproduces the quantization of a pure float32 pipeline. A hue outside
// [0, 360) selects no sector and degrades to the gray value V rather than
// failing; call Normalize first to make that case unreachable.
func HsvToRgb[To Channel, From FloatChannel](c Hsv[From]) Rgb[To] {
	h := float64(c.H)
	s := ToFloat64(c.S)
	v := ToFloat64(c.V)

	chroma := v * s
	hp := h / 60

	// Second-largest component for the current sector.
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 0 || hp >= 6:
		// fall through to gray
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	// Lift all components by the same amount to match the value.
	m := v - chroma

	return Rgb[To]{
		R: ConvertChannel[To](From(r + m)),
		G: ConvertChannel[To](From(g + m)),
		B: ConvertChannel[To](From(b + m)),
	}
}

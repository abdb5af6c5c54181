package pigment

import "math"

// Channel is the set of numeric types that can hold a single color
// component. Integer encodings cover their full range with no implicit
// normalization; float encodings represent the normalized range [0, 1].
type Channel interface {
	uint8 | uint16 | float32 | float64
}

// FloatChannel is the subset of Channel with float semantics. Hue-based
// color types require it.
type FloatChannel interface {
	float32 | float64
}

// ToUint8 converts a channel value to the 8-bit encoding. Conversion from
// uint16 keeps the high byte; conversion from floats truncates after
// scaling, it does not round.
func ToUint8[T Channel](v T) uint8 {
	switch v := any(v).(type) {
	case uint8:
		return v
	case uint16:
		return uint8(v >> 8)
	case float32:
		return uint8(v * math.MaxUint8)
	case float64:
		return uint8(v * math.MaxUint8)
	}
	panic("pigment: unknown channel type")
}

// ToUint16 converts a channel value to the 16-bit encoding. An 8-bit value
// is expanded by replicating the byte into both halves, so 0x00 maps to
// 0x0000 and 0xFF to 0xFFFF. This is deliberately not a left shift; do not
// "fix" it, callers rely on the exact bit pattern.
func ToUint16[T Channel](v T) uint16 {
	switch v := any(v).(type) {
	case uint8:
		return uint16(v)<<8 | uint16(v)
	case uint16:
		return v
	case float32:
		return uint16(v * math.MaxUint16)
	case float64:
		return uint16(v * math.MaxUint16)
	}
	panic("pigment: unknown channel type")
}

// ToFloat32 converts a channel value to the normalized float32 encoding.
func ToFloat32[T Channel](v T) float32 {
	switch v := any(v).(type) {
	case uint8:
		return float32(v) / math.MaxUint8
	case uint16:
		return float32(v) / math.MaxUint16
	case float32:
		return v
	case float64:
		return float32(v)
	}
	panic("pigment: unknown channel type")
}

// ToFloat64 converts a channel value to the normalized float64 encoding.
func ToFloat64[T Channel](v T) float64 {
	switch v := any(v).(type) {
	case uint8:
		return float64(v) / math.MaxUint8
	case uint16:
		return float64(v) / math.MaxUint16
	case float32:
		return float64(v)
	case float64:
		return v
	}
	panic("pigment: unknown channel type")
}

// ConvertChannel converts a channel value between encodings, dispatching on
// the target type. Conversions to a narrower encoding are lossy.
func ConvertChannel[To, From Channel](v From) To {
	var to To
	switch any(to).(type) {
	case uint8:
		return To(ToUint8(v))
	case uint16:
		return To(ToUint16(v))
	case float32:
		return To(ToFloat32(v))
	default:
		return To(ToFloat64(v))
	}
}

// ChannelMax returns the largest representable channel value for the
// encoding: 255, 65535, or 1.0.
func ChannelMax[T Channel]() T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		m := uint8(math.MaxUint8)
		return T(m)
	case uint16:
		// Converted through a variable: a constant 65535 would not be
		// representable in every type of the Channel set.
		m := uint16(math.MaxUint16)
		return T(m)
	default:
		return T(1)
	}
}

// InvertChannel returns max − v. For the evenly spaced integer encodings
// this equals the bitwise complement.
func InvertChannel[T Channel](v T) T {
	return ChannelMax[T]() - v
}

// ClampChannel limits v to the range [lo, hi]. The result is unspecified
// when lo > hi.
func ClampChannel[T Channel](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizedMul multiplies two channel values as if both were normalized
// fractions, re-encoded to T. Multiplying by ChannelMax is the identity.
func NormalizedMul[T Channel](a, b T) T {
	return ConvertChannel[T](ToFloat32(a) * ToFloat32(b))
}

// NormalizedDiv divides two channel values as normalized fractions.
// Division by zero follows float semantics on the intermediate value; for
// integer encodings the re-encoding of the resulting Inf or NaN is
// unspecified.
func NormalizedDiv[T Channel](a, b T) T {
	return ConvertChannel[T](ToFloat32(a) / ToFloat32(b))
}

// MixChannel linearly interpolates from a to b by t, where t is itself a
// channel value interpreted as a fraction of its encoding's range.
// t == 0 yields exactly a and t == ChannelMax yields exactly b.
func MixChannel[T Channel](a, b, t T) T {
	switch t {
	case 0:
		return a
	case ChannelMax[T]():
		return b
	}
	af, bf := ToFloat64(a), ToFloat64(b)
	return ConvertChannel[T](af + (bf-af)*ToFloat64(t))
}

// SaturatingAdd adds two channel values, clamping at ChannelMax instead of
// wrapping. Float encodings clamp the sum to [0, 1].
func SaturatingAdd[T Channel](a, b T) T {
	switch av := any(a).(type) {
	case uint8:
		if s := uint16(av) + uint16(any(b).(uint8)); s <= math.MaxUint8 {
			return T(uint8(s))
		}
		return ChannelMax[T]()
	case uint16:
		if s := uint32(av) + uint32(any(b).(uint16)); s <= math.MaxUint16 {
			return T(uint16(s))
		}
		return ChannelMax[T]()
	}
	return ClampChannel(a+b, 0, ChannelMax[T]())
}

// SaturatingSub subtracts b from a, clamping at zero instead of wrapping.
func SaturatingSub[T Channel](a, b T) T {
	if b >= a {
		return 0
	}
	return ClampChannel(a-b, 0, ChannelMax[T]())
}

// Saturate clamps a float channel value to the normalized range [0, 1].
func Saturate[T FloatChannel](v T) T {
	return ClampChannel(v, 0, 1)
}

// NormalizeDegrees wraps an angle in degrees into [0, 360).
func NormalizeDegrees[T FloatChannel](h T) T {
	h = T(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}

// InvertDegrees rotates a hue angle by 180°, the perceptual inverse.
func InvertDegrees[T FloatChannel](h T) T {
	return NormalizeDegrees(h + 180)
}

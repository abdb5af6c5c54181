// Package pigment provides value types and conversions for working with
// colors in several channel encodings.
//
// A color component ("channel") is one of four encodings: uint8 and uint16
// covering their full integer range, or float32 and float64 covering the
// normalized range [0, 1]. Color types are generic over the channel
// encoding: Rgb[uint8] is a packed 24-bit color, Rgb[float32] a normalized
// one, and ConvertRgb moves losslessly or lossily between them with
// well-defined rounding.
//
// The package also provides Hsv with hue in degrees, an Alpha wrapper that
// pairs any color with an opacity channel, the SVG keyword colors, hex
// string parsing, and an HCL palette file format (see the palette
// subpackage).
//
// All types are small immutable values; every operation returns a new
// value and never fails at runtime.
package pigment

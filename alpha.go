package pigment

// Color is the set of operations every color type in this package
// supports. The second type parameter is the implementing type itself, so
// operations stay closed over the concrete color.
type Color[T Channel, C any] interface {
	Clamp(lo, hi T) C
	ClampEach(lo, hi C) C
	Invert() C
	Mix(other C, t T) C
}

// Alpha pairs an opacity channel with an underlying color of any type.
// Channel operations apply to A, color operations forward to C.
type Alpha[T Channel, C Color[T, C]] struct {
	C C
	A T
}

// NewRgba returns an alpha-augmented Rgb color from four channel values.
func NewRgba[T Channel](r, g, b, a T) Alpha[T, Rgb[T]] {
	return Alpha[T, Rgb[T]]{C: Rgb[T]{R: r, G: g, B: b}, A: a}
}

// WithAlpha attaches an opacity channel to an Rgb color.
func (c Rgb[T]) WithAlpha(a T) Alpha[T, Rgb[T]] {
	return Alpha[T, Rgb[T]]{C: c, A: a}
}

// WithAlpha attaches an opacity channel to an Hsv color.
func (c Hsv[T]) WithAlpha(a T) Alpha[T, Hsv[T]] {
	return Alpha[T, Hsv[T]]{C: c, A: a}
}

// Clamp limits the color and alpha components to the range [lo, hi].
func (c Alpha[T, C]) Clamp(lo, hi T) Alpha[T, C] {
	return Alpha[T, C]{C: c.C.Clamp(lo, hi), A: ClampChannel(c.A, lo, hi)}
}

// ClampEach limits each component between the matching components of lo
// and hi.
func (c Alpha[T, C]) ClampEach(lo, hi Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: c.C.ClampEach(lo.C, hi.C), A: ClampChannel(c.A, lo.A, hi.A)}
}

// Invert inverts the color and the alpha channel.
func (c Alpha[T, C]) Invert() Alpha[T, C] {
	return Alpha[T, C]{C: c.C.Invert(), A: InvertChannel(c.A)}
}

// Mix linearly interpolates both the color and the alpha toward other.
func (c Alpha[T, C]) Mix(other Alpha[T, C], t T) Alpha[T, C] {
	return Alpha[T, C]{C: c.C.Mix(other.C, t), A: MixChannel(c.A, other.A, t)}
}

// WithAlpha replaces the opacity channel.
func (c Alpha[T, C]) WithAlpha(a T) Alpha[T, C] {
	c.A = a
	return c
}

// Arithmetic on alpha colors is provided as free functions constrained on
// the wrapped color's capabilities, so an Rgb wrapper supports the full
// algebra while an Hsv wrapper deliberately does not.

// AddAlpha adds two alpha colors component-wise, alpha included.
func AddAlpha[T Channel, C interface {
	Color[T, C]
	Add(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.Add(y.C), A: x.A + y.A}
}

// SubAlpha subtracts two alpha colors component-wise, alpha included.
func SubAlpha[T Channel, C interface {
	Color[T, C]
	Sub(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.Sub(y.C), A: x.A - y.A}
}

// MulAlpha multiplies two alpha colors as normalized fractions.
func MulAlpha[T Channel, C interface {
	Color[T, C]
	Mul(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.Mul(y.C), A: NormalizedMul(x.A, y.A)}
}

// DivAlpha divides two alpha colors as normalized fractions.
func DivAlpha[T Channel, C interface {
	Color[T, C]
	Div(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.Div(y.C), A: NormalizedDiv(x.A, y.A)}
}

// MulAlphaScalar multiplies every component by s using raw channel
// arithmetic.
func MulAlphaScalar[T Channel, C interface {
	Color[T, C]
	MulScalar(T) C
}](x Alpha[T, C], s T) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.MulScalar(s), A: x.A * s}
}

// DivAlphaScalar divides every component by s using raw channel
// arithmetic.
func DivAlphaScalar[T Channel, C interface {
	Color[T, C]
	DivScalar(T) C
}](x Alpha[T, C], s T) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.DivScalar(s), A: x.A / s}
}

// SaturatingAddAlpha adds component-wise, clamping at the encoding's
// maximum.
func SaturatingAddAlpha[T Channel, C interface {
	Color[T, C]
	SaturatingAdd(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.SaturatingAdd(y.C), A: SaturatingAdd(x.A, y.A)}
}

// SaturatingSubAlpha subtracts component-wise, clamping at zero.
func SaturatingSubAlpha[T Channel, C interface {
	Color[T, C]
	SaturatingSub(C) C
}](x, y Alpha[T, C]) Alpha[T, C] {
	return Alpha[T, C]{C: x.C.SaturatingSub(y.C), A: SaturatingSub(x.A, y.A)}
}

// ToRgba converts an Rgb color to its alpha-augmented form with full
// opacity.
func ToRgba[To, From Channel](c Rgb[From]) Alpha[To, Rgb[To]] {
	return Alpha[To, Rgb[To]]{C: ConvertRgb[To](c), A: ChannelMax[To]()}
}

// ConvertRgba converts an alpha-augmented Rgb color between channel
// encodings.
func ConvertRgba[To, From Channel](c Alpha[From, Rgb[From]]) Alpha[To, Rgb[To]] {
	return Alpha[To, Rgb[To]]{C: ConvertRgb[To](c.C), A: ConvertChannel[To](c.A)}
}

// RgbaToHsva converts an alpha-augmented Rgb color to the Hsv form,
// carrying the alpha across.
func RgbaToHsva[To FloatChannel, From Channel](c Alpha[From, Rgb[From]]) Alpha[To, Hsv[To]] {
	return Alpha[To, Hsv[To]]{C: RgbToHsv[To](c.C), A: ConvertChannel[To](c.A)}
}

// HsvaToRgba converts an alpha-augmented Hsv color to the Rgb form,
// carrying the alpha across.
func HsvaToRgba[To Channel, From FloatChannel](c Alpha[From, Hsv[From]]) Alpha[To, Rgb[To]] {
	return Alpha[To, Rgb[To]]{C: HsvToRgb[To](c.C), A: ConvertChannel[To](c.A)}
}

// RgbaComponents returns the components in r, g, b, a order.
func RgbaComponents[T Channel](c Alpha[T, Rgb[T]]) [4]T {
	return [4]T{c.C.R, c.C.G, c.C.B, c.A}
}

// PermuteRgba returns the color reordered by component indices into r, g,
// b, a order; PermuteRgba(c, 2, 1, 0, 3) swaps red and blue. This is the
// indexed-access form of the component swizzles.
func PermuteRgba[T Channel](c Alpha[T, Rgb[T]], i, j, k, l int) Alpha[T, Rgb[T]] {
	s := RgbaComponents(c)
	return NewRgba(s[i], s[j], s[k], s[l])
}

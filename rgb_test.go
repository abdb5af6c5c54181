package pigment

import (
	"math"
	"testing"
)

func TestConvertRgb(t *testing.T) {
	in := Rgb[uint8]{0xA0, 0xA0, 0xA0}

	if got := ConvertRgb[uint8](in); got != in {
		t.Errorf("ConvertRgb[uint8] = %v, want %v", got, in)
	}

	want16 := Rgb[uint16]{0xA0A0, 0xA0A0, 0xA0A0}
	if got := ConvertRgb[uint16](in); got != want16 {
		t.Errorf("ConvertRgb[uint16] = %v, want %v", got, want16)
	}

	wantF := Rgb[float64]{1, 1, 1}
	if got := ConvertRgb[float64](Rgb[uint8]{0xFF, 0xFF, 0xFF}); got != wantF {
		t.Errorf("ConvertRgb[float64](white) = %v, want %v", got, wantF)
	}
}

func TestRgbToHsvKnownPoints(t *testing.T) {
	tests := []struct {
		name string
		in   Rgb[uint8]
		want Hsv[float32]
	}{
		{"white", Rgb[uint8]{0xFF, 0xFF, 0xFF}, Hsv[float32]{0, 0, 1}},
		{"dark red", Rgb[uint8]{0x99, 0x00, 0x00}, Hsv[float32]{0, 1, 0.6}},
		{"dark green", Rgb[uint8]{0x00, 0x99, 0x00}, Hsv[float32]{120, 1, 0.6}},
		{"dark blue", Rgb[uint8]{0x00, 0x00, 0x99}, Hsv[float32]{240, 1, 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RgbToHsv[float32](tt.in); got != tt.want {
				t.Errorf("RgbToHsv(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRgbToHsvAchromatic(t *testing.T) {
	// Any gray maps to hue 0 and saturation 0, whatever the gray level.
	for _, v := range []uint8{0x00, 0x40, 0x80, 0xC0, 0xFF} {
		got := RgbToHsv[float64](Rgb[uint8]{v, v, v})
		if got.H != 0 || got.S != 0 {
			t.Errorf("RgbToHsv(gray %#02x) = %v, want h=0 s=0", v, got)
		}
		if want := float64(v) / 255; got.V != want {
			t.Errorf("RgbToHsv(gray %#02x).V = %v, want %v", v, got.V, want)
		}
	}
}

func TestRgbToHsvTiePriority(t *testing.T) {
	// Yellow: r and g tie for the maximum; r wins, giving h = 60 rather
	// than the g-sector result.
	got := RgbToHsv[float64](Rgb[uint8]{0xFF, 0xFF, 0x00})
	if got.H != 60 {
		t.Errorf("RgbToHsv(yellow).H = %v, want 60", got.H)
	}

	// Magenta: r is max with g < b, driving the sector value negative
	// before the wrap to [0, 360).
	got = RgbToHsv[float64](Rgb[uint8]{0xFF, 0x00, 0xFF})
	if got.H != 300 {
		t.Errorf("RgbToHsv(magenta).H = %v, want 300", got.H)
	}
}

func TestRgbHsvRoundTrip(t *testing.T) {
	// Through HSV and back, every component lands within one unit of
	// 8-bit quantization.
	colors := []Rgb[uint8]{
		{0x99, 0x00, 0x00},
		{0x00, 0x99, 0x00},
		{0x00, 0x00, 0x99},
		{0x12, 0x34, 0x56},
		{0xEB, 0x6F, 0x92},
		{0xFF, 0xA5, 0x00},
		{0x80, 0x80, 0x80},
	}

	for _, in := range colors {
		hsv := RgbToHsv[float32](in)
		out := HsvToRgb[uint8](hsv)
		if d := absDiff(in.R, out.R); d > 1 {
			t.Errorf("round trip of %v: r = %#02x, want %#02x±1", in, out.R, in.R)
		}
		if d := absDiff(in.G, out.G); d > 1 {
			t.Errorf("round trip of %v: g = %#02x, want %#02x±1", in, out.G, in.G)
		}
		if d := absDiff(in.B, out.B); d > 1 {
			t.Errorf("round trip of %v: b = %#02x, want %#02x±1", in, out.B, in.B)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRgbArithmetic(t *testing.T) {
	if got, want := NewRgb[uint8](20, 20, 20).Add(NewRgb[uint8](20, 20, 20)), NewRgb[uint8](40, 40, 40); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := NewRgb[uint8](254, 254, 254).SaturatingAdd(NewRgb[uint8](20, 20, 20)), NewRgb[uint8](255, 255, 255); got != want {
		t.Errorf("SaturatingAdd = %v, want %v", got, want)
	}
	if got, want := NewRgb[uint8](20, 20, 20).SaturatingSub(NewRgb[uint8](50, 50, 50)), NewRgb[uint8](0, 0, 0); got != want {
		t.Errorf("SaturatingSub = %v, want %v", got, want)
	}
	if got, want := NewRgb[uint8](127, 127, 127).Mul(NewRgb[uint8](255, 255, 255)), NewRgb[uint8](127, 127, 127); got != want {
		t.Errorf("Mul by white = %v, want %v", got, want)
	}
	if got, want := NewRgb[uint8](127, 127, 127).Div(NewRgb[uint8](255, 255, 255)), NewRgb[uint8](127, 127, 127); got != want {
		t.Errorf("Div by white = %v, want %v", got, want)
	}
	if got, want := NewRgb[float32](1, 1, 1).MulScalar(2), NewRgb[float32](2, 2, 2); got != want {
		t.Errorf("MulScalar = %v, want %v", got, want)
	}
	if got, want := SaturateRgb(NewRgb[float32](1, 1, 1).MulScalar(2)), NewRgb[float32](1, 1, 1); got != want {
		t.Errorf("SaturateRgb = %v, want %v", got, want)
	}
}

func TestRgbMixBoundaries(t *testing.T) {
	a := NewRgb[uint8](10, 20, 30)
	b := NewRgb[uint8](200, 100, 50)

	if got := a.Mix(b, 0); got != a {
		t.Errorf("Mix(a, b, 0) = %v, want %v", got, a)
	}
	if got := a.Mix(b, 255); got != b {
		t.Errorf("Mix(a, b, 255) = %v, want %v", got, b)
	}

	af := NewRgb[float64](0.1, 0.2, 0.3)
	bf := NewRgb[float64](0.9, 0.8, 0.7)
	if got := af.Mix(bf, 0); got != af {
		t.Errorf("Mix(af, bf, 0) = %v, want %v", got, af)
	}
	if got := af.Mix(bf, 1); got != bf {
		t.Errorf("Mix(af, bf, 1) = %v, want %v", got, bf)
	}
}

func TestRgbInvert(t *testing.T) {
	in := NewRgb[uint8](0x66, 0x00, 0xFF)
	want := NewRgb[uint8](0x99, 0xFF, 0x00)
	if got := in.Invert(); got != want {
		t.Errorf("Invert(%v) = %v, want %v", in, got, want)
	}
	if got := in.Invert().Invert(); got != in {
		t.Errorf("double invert of %v = %v", in, got)
	}
}

func TestRgbClamp(t *testing.T) {
	in := NewRgb[uint8](10, 128, 250)

	want := NewRgb[uint8](50, 128, 200)
	if got := in.Clamp(50, 200); got != want {
		t.Errorf("Clamp(50, 200) = %v, want %v", got, want)
	}

	lo := NewRgb[uint8](20, 20, 20)
	hi := NewRgb[uint8](100, 200, 255)
	want = NewRgb[uint8](20, 128, 250)
	if got := in.ClampEach(lo, hi); got != want {
		t.Errorf("ClampEach = %v, want %v", got, want)
	}
}

func TestRgbSwizzles(t *testing.T) {
	c := NewRgb[uint8](1, 2, 3)

	if got, want := c.BGR(), NewRgb[uint8](3, 2, 1); got != want {
		t.Errorf("BGR = %v, want %v", got, want)
	}
	if got, want := c.GRB(), NewRgb[uint8](2, 1, 3); got != want {
		t.Errorf("GRB = %v, want %v", got, want)
	}
	if got, want := c.RG(), (Rg[uint8]{1, 2}); got != want {
		t.Errorf("RG = %v, want %v", got, want)
	}
	if got, want := c.BR(), (Rg[uint8]{3, 1}); got != want {
		t.Errorf("BR = %v, want %v", got, want)
	}

	// Permute is the indexed-access equivalent of the named swizzles.
	if got := c.Permute(2, 1, 0); got != c.BGR() {
		t.Errorf("Permute(2,1,0) = %v, want %v", got, c.BGR())
	}
	if got := c.Component(1); got != 2 {
		t.Errorf("Component(1) = %d, want 2", got)
	}
}

func TestRgbFromPacked(t *testing.T) {
	want := Rgb[uint8]{0x12, 0x34, 0x56}
	if got := RgbFromPacked(0x123456); got != want {
		t.Errorf("RgbFromPacked(0x123456) = %v, want %v", got, want)
	}

	hsv := HsvFromPacked[float32](0x990000)
	if want := (Hsv[float32]{0, 1, 0.6}); hsv != want {
		t.Errorf("HsvFromPacked(0x990000) = %v, want %v", hsv, want)
	}
}

func TestRgbMixMidpointQuantization(t *testing.T) {
	a := NewRgb[float64](0, 0, 0)
	b := NewRgb[float64](1, 0.5, 0.25)
	got := a.Mix(b, 0.5)
	for i, want := range []float64{0.5, 0.25, 0.125} {
		if math.Abs(got.Component(i)-want) > 1e-12 {
			t.Errorf("Mix midpoint component %d = %v, want %v", i, got.Component(i), want)
		}
	}
}

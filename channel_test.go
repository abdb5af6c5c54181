package pigment

import (
	"math"
	"testing"
)

func TestToUint16ByteReplication(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint16
	}{
		{0x00, 0x0000},
		{0x30, 0x3030},
		{0x66, 0x6666},
		{0xA0, 0xA0A0},
		{0xFF, 0xFFFF},
	}

	for _, tt := range tests {
		if got := ToUint16(tt.in); got != tt.want {
			t.Errorf("ToUint16(%#02x) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
}

func TestToUint8Truncation(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint8
	}{
		{0x0000, 0x00},
		{0x3300, 0x33},
		{0x33FF, 0x33},
		{0x6666, 0x66},
		{0xAA00, 0xAA},
		{0xFFFF, 0xFF},
	}

	for _, tt := range tests {
		if got := ToUint8(tt.in); got != tt.want {
			t.Errorf("ToUint8(%#04x) = %#02x, want %#02x", tt.in, got, tt.want)
		}
	}
}

func TestFloatToIntTruncates(t *testing.T) {
	// float→int conversion truncates toward zero, it does not round.
	tests := []struct {
		in      float32
		wantU8  uint8
		wantU16 uint16
	}{
		{0.00, 0x00, 0x0000},
		{0.25, 0x3F, 0x3FFF},
		{0.50, 0x7F, 0x7FFF},
		{0.75, 0xBF, 0xBFFF},
		{1.00, 0xFF, 0xFFFF},
	}

	for _, tt := range tests {
		if got := ToUint8(tt.in); got != tt.wantU8 {
			t.Errorf("ToUint8(%v) = %#02x, want %#02x", tt.in, got, tt.wantU8)
		}
		if got := ToUint16(tt.in); got != tt.wantU16 {
			t.Errorf("ToUint16(%v) = %#04x, want %#04x", tt.in, got, tt.wantU16)
		}
	}
}

func TestBoundaryConversions(t *testing.T) {
	if got := ToUint16(uint8(0x00)); got != 0x0000 {
		t.Errorf("ToUint16(0x00) = %#04x, want 0x0000", got)
	}
	if got := ToFloat32(uint8(0x00)); got != 0 {
		t.Errorf("ToFloat32(0x00) = %v, want 0", got)
	}
	if got := ToFloat64(uint8(0x00)); got != 0 {
		t.Errorf("ToFloat64(0x00) = %v, want 0", got)
	}
	if got := ToUint16(uint8(0xFF)); got != 0xFFFF {
		t.Errorf("ToUint16(0xFF) = %#04x, want 0xFFFF", got)
	}
	if got := ToFloat32(uint8(0xFF)); got != 1 {
		t.Errorf("ToFloat32(0xFF) = %v, want 1", got)
	}
	if got := ToFloat64(uint16(0xFFFF)); got != 1 {
		t.Errorf("ToFloat64(0xFFFF) = %v, want 1", got)
	}
}

func TestUint8RoundTrip(t *testing.T) {
	// Byte replication makes u8 → u16 → u8 lossless for every value.
	for v := 0; v <= math.MaxUint8; v++ {
		in := uint8(v)
		if got := ToUint8(ToUint16(in)); got != in {
			t.Fatalf("ToUint8(ToUint16(%#02x)) = %#02x, want %#02x", in, got, in)
		}
	}
}

func TestUint16RoundTripIsLossy(t *testing.T) {
	// u16 → u8 → u16 keeps only the high byte, replicated.
	tests := []struct {
		in   uint16
		want uint16
	}{
		{0x1234, 0x1212},
		{0xABCD, 0xABAB},
		{0x00FF, 0x0000},
	}

	for _, tt := range tests {
		if got := ToUint16(ToUint8(tt.in)); got != tt.want {
			t.Errorf("round trip of %#04x = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
}

func TestConvertChannel(t *testing.T) {
	if got := ConvertChannel[uint16](uint8(0x30)); got != 0x3030 {
		t.Errorf("ConvertChannel[uint16](0x30) = %#04x, want 0x3030", got)
	}
	if got := ConvertChannel[float64](uint16(0xFFFF)); got != 1 {
		t.Errorf("ConvertChannel[float64](0xFFFF) = %v, want 1", got)
	}
	if got := ConvertChannel[uint8](float64(0.25)); got != 0x3F {
		t.Errorf("ConvertChannel[uint8](0.25) = %#02x, want 0x3F", got)
	}
	if got := ConvertChannel[float32](float64(0.5)); got != 0.5 {
		t.Errorf("ConvertChannel[float32](0.5) = %v, want 0.5", got)
	}
}

func TestChannelMax(t *testing.T) {
	if got := ChannelMax[uint8](); got != 255 {
		t.Errorf("ChannelMax[uint8] = %d, want 255", got)
	}
	if got := ChannelMax[uint16](); got != 65535 {
		t.Errorf("ChannelMax[uint16] = %d, want 65535", got)
	}
	if got := ChannelMax[float32](); got != 1 {
		t.Errorf("ChannelMax[float32] = %v, want 1", got)
	}
	if got := ChannelMax[float64](); got != 1 {
		t.Errorf("ChannelMax[float64] = %v, want 1", got)
	}
}

func TestInvertChannel(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0x00, 0xFF},
		{0x66, 0x99},
		{0xFF, 0x00},
	}
	for _, tt := range tests {
		if got := InvertChannel(tt.in); got != tt.want {
			t.Errorf("InvertChannel(%#02x) = %#02x, want %#02x", tt.in, got, tt.want)
		}
	}

	if got := InvertChannel(uint16(0x6666)); got != 0x9999 {
		t.Errorf("InvertChannel(0x6666) = %#04x, want 0x9999", got)
	}
	if got := InvertChannel(float32(0.25)); got != 0.75 {
		t.Errorf("InvertChannel(0.25) = %v, want 0.75", got)
	}
}

func TestInvertChannelInvolution(t *testing.T) {
	for v := 0; v <= math.MaxUint8; v++ {
		in := uint8(v)
		if got := InvertChannel(InvertChannel(in)); got != in {
			t.Fatalf("double invert of %#02x = %#02x", in, got)
		}
	}

	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := InvertChannel(InvertChannel(v)); got != v {
			t.Errorf("double invert of %v = %v", v, got)
		}
	}
}

func TestClampChannel(t *testing.T) {
	if got := ClampChannel(uint8(10), 20, 30); got != 20 {
		t.Errorf("ClampChannel(10, 20, 30) = %d, want 20", got)
	}
	if got := ClampChannel(uint8(40), 20, 30); got != 30 {
		t.Errorf("ClampChannel(40, 20, 30) = %d, want 30", got)
	}
	if got := ClampChannel(uint8(25), 20, 30); got != 25 {
		t.Errorf("ClampChannel(25, 20, 30) = %d, want 25", got)
	}
}

func TestNormalizedMul(t *testing.T) {
	// Multiplying by the encoding's max is the identity.
	if got := NormalizedMul(uint8(127), 255); got != 127 {
		t.Errorf("NormalizedMul(127, 255) = %d, want 127", got)
	}
	if got := NormalizedMul(uint16(0x7FFF), 0xFFFF); got != 0x7FFF {
		t.Errorf("NormalizedMul(0x7FFF, 0xFFFF) = %#04x, want 0x7FFF", got)
	}
	if got := NormalizedMul(float32(0.5), 0.5); got != 0.25 {
		t.Errorf("NormalizedMul(0.5, 0.5) = %v, want 0.25", got)
	}
}

func TestNormalizedDiv(t *testing.T) {
	if got := NormalizedDiv(uint8(127), 255); got != 127 {
		t.Errorf("NormalizedDiv(127, 255) = %d, want 127", got)
	}
	if got := NormalizedDiv(float64(0.25), 0.5); got != 0.5 {
		t.Errorf("NormalizedDiv(0.25, 0.5) = %v, want 0.5", got)
	}
	if got := NormalizedDiv(float64(1), 0); !math.IsInf(got, 1) {
		t.Errorf("NormalizedDiv(1, 0) = %v, want +Inf", got)
	}
}

func TestMixChannelBoundaries(t *testing.T) {
	// t = 0 and t = max must reproduce the endpoints exactly.
	if got := MixChannel(uint8(13), 240, 0); got != 13 {
		t.Errorf("MixChannel(13, 240, 0) = %d, want 13", got)
	}
	if got := MixChannel(uint8(13), 240, 255); got != 240 {
		t.Errorf("MixChannel(13, 240, 255) = %d, want 240", got)
	}
	if got := MixChannel(float32(0.1), 0.9, 0); got != 0.1 {
		t.Errorf("MixChannel(0.1, 0.9, 0) = %v, want 0.1", got)
	}
	if got := MixChannel(float32(0.1), 0.9, 1); got != 0.9 {
		t.Errorf("MixChannel(0.1, 0.9, 1) = %v, want 0.9", got)
	}
}

func TestMixChannelMidpoint(t *testing.T) {
	if got := MixChannel(0.0, 1.0, 0.5); got != 0.5 {
		t.Errorf("MixChannel(0, 1, 0.5) = %v, want 0.5", got)
	}

	// Integer mix quantizes; allow one unit of slack.
	got := MixChannel(uint8(0), 200, 128)
	if got < 99 || got > 101 {
		t.Errorf("MixChannel(0, 200, 128) = %d, want 100±1", got)
	}
}

func TestSaturatingAdd(t *testing.T) {
	if got := SaturatingAdd(uint8(254), 20); got != 255 {
		t.Errorf("SaturatingAdd(254, 20) = %d, want 255", got)
	}
	if got := SaturatingAdd(uint8(20), 20); got != 40 {
		t.Errorf("SaturatingAdd(20, 20) = %d, want 40", got)
	}
	if got := SaturatingAdd(uint16(0xFFF0), 0x0020); got != 0xFFFF {
		t.Errorf("SaturatingAdd(0xFFF0, 0x0020) = %#04x, want 0xFFFF", got)
	}
	if got := SaturatingAdd(float32(0.75), 0.75); got != 1 {
		t.Errorf("SaturatingAdd(0.75, 0.75) = %v, want 1", got)
	}
}

func TestSaturatingSub(t *testing.T) {
	if got := SaturatingSub(uint8(20), 50); got != 0 {
		t.Errorf("SaturatingSub(20, 50) = %d, want 0", got)
	}
	if got := SaturatingSub(uint8(50), 20); got != 30 {
		t.Errorf("SaturatingSub(50, 20) = %d, want 30", got)
	}
	if got := SaturatingSub(float64(0.25), 0.75); got != 0 {
		t.Errorf("SaturatingSub(0.25, 0.75) = %v, want 0", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{450, 90},
		{-30, 330},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvertDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 180},
		{90, 270},
		{180, 0},
		{270, 90},
	}
	for _, tt := range tests {
		if got := InvertDegrees(tt.in); got != tt.want {
			t.Errorf("InvertDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

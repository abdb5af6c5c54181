package palette

import (
	"fmt"

	"github.com/jsvensson/pigment"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// builtinFunctions returns the function set available inside palette
// expressions. Every function takes and returns colors as hex strings.
func builtinFunctions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":      makeRgbFunc(),
		"hsv":      makeHsvFunc(),
		"mix":      makeMixFunc(),
		"invert":   makeInvertFunc(),
		"named":    makeNamedFunc(),
		"rotate":   makeRotateFunc(),
		"saturate": makeSaturateFunc(),
		"lighten":  makeLightenFunc(),
	}
}

// makeRgbFunc builds rgb(r, g, b) from 8-bit component values.
func makeRgbFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var comp [3]uint8
			for i, arg := range args {
				f, _ := arg.AsBigFloat().Float64()
				if f < 0 || f > 255 {
					return cty.NilVal, fmt.Errorf("rgb component %v out of range [0, 255]", f)
				}
				comp[i] = uint8(f)
			}
			return hexVal(pigment.NewRgb(comp[0], comp[1], comp[2])), nil
		},
	})
}

// makeHsvFunc builds hsv(h, s, v) with hue in degrees and saturation and
// value in [0, 1].
func makeHsvFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "h", Type: cty.Number},
			{Name: "s", Type: cty.Number},
			{Name: "v", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := args[0].AsBigFloat().Float64()
			s, _ := args[1].AsBigFloat().Float64()
			v, _ := args[2].AsBigFloat().Float64()
			c := pigment.NewHsv(h, s, v).Normalize()
			return hexVal(pigment.HsvToRgb[uint8](c)), nil
		},
	})
}

// makeMixFunc builds mix(a, b, t), a linear blend with t in [0, 1].
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
			{Name: "t", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := pigment.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			b, err := pigment.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			t, _ := args[2].AsBigFloat().Float64()
			if t < 0 || t > 1 {
				return cty.NilVal, fmt.Errorf("mix amount %v out of range [0, 1]", t)
			}

			af := pigment.ConvertRgb[float64](a)
			bf := pigment.ConvertRgb[float64](b)
			return hexVal(pigment.ConvertRgb[uint8](af.Mix(bf, t))), nil
		},
	})
}

// makeInvertFunc builds invert(color).
func makeInvertFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := pigment.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return hexVal(c.Invert()), nil
		},
	})
}

// makeNamedFunc builds named(name), looking up an SVG 1.0 color name.
func makeNamedFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, ok := pigment.ColorByName(args[0].AsString())
			if !ok {
				return cty.NilVal, fmt.Errorf("unknown color name %q", args[0].AsString())
			}
			return hexVal(c), nil
		},
	})
}

// makeRotateFunc builds rotate(color, degrees), rotating the hue.
func makeRotateFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "degrees", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return adjustHsv(args[0], func(c pigment.Hsv[float64]) pigment.Hsv[float64] {
				deg, _ := args[1].AsBigFloat().Float64()
				c.H += deg
				return c
			})
		},
	})
}

// makeSaturateFunc builds saturate(color, amount). Negative amounts
// desaturate.
func makeSaturateFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return adjustHsv(args[0], func(c pigment.Hsv[float64]) pigment.Hsv[float64] {
				amount, _ := args[1].AsBigFloat().Float64()
				c.S += amount
				return c
			})
		},
	})
}

// makeLightenFunc builds lighten(color, amount). Negative amounts darken.
func makeLightenFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return adjustHsv(args[0], func(c pigment.Hsv[float64]) pigment.Hsv[float64] {
				amount, _ := args[1].AsBigFloat().Float64()
				c.V += amount
				return c
			})
		},
	})
}

// adjustHsv applies fn to the HSV form of a hex color and re-encodes the
// result, normalizing out-of-range components first.
func adjustHsv(arg cty.Value, fn func(pigment.Hsv[float64]) pigment.Hsv[float64]) (cty.Value, error) {
	c, err := pigment.ParseHex(arg.AsString())
	if err != nil {
		return cty.NilVal, err
	}
	adjusted := fn(pigment.RgbToHsv[float64](c)).Normalize()
	return hexVal(pigment.HsvToRgb[uint8](adjusted)), nil
}

func hexVal(c pigment.Rgb[uint8]) cty.Value {
	return cty.StringVal(c.Hex())
}

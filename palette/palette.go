// Package palette loads named color palettes from HCL files.
//
// A palette file holds a single palette block whose attributes are colors.
// Entries are evaluated in source order and may reference any earlier
// entry, either bare (love) or qualified (palette.love). A small set of
// functions backed by the pigment color math is available in expressions:
//
//	meta {
//	  name   = "Rose Pine"
//	  author = "..."
//	}
//
//	palette {
//	  love   = "#eb6f92"
//	  gold   = rgb(246, 193, 119)
//	  pine   = hsv(197, 0.66, 0.56)
//	  accent = mix(love, gold, 0.5)
//	  anti   = invert(palette.love)
//	  rose   = named("mistyrose")
//	  warm   = rotate(gold, -15)
//	  soft   = saturate(love, -0.3)
//	  bright = lighten(pine, 0.2)
//	}
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/pigment"
	"github.com/zclconf/go-cty/cty"
)

// Palette is a fully-resolved palette file.
type Palette struct {
	Meta   Meta
	Colors map[string]pigment.Rgb[uint8]
	Order  []string // entry names in declaration order
}

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
}

// Color returns a palette entry by name.
func (p *Palette) Color(name string) (pigment.Rgb[uint8], bool) {
	c, ok := p.Colors[name]
	return c, ok
}

// Load parses an HCL palette file and resolves every entry.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses HCL palette source. The filename is used in diagnostics
// only.
func Parse(src []byte, filename string) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)

	p := &Palette{Colors: make(map[string]pigment.Rgb[uint8])}

	var paletteBlock *hclsyntax.Block
	for _, block := range body.Blocks {
		switch block.Type {
		case "meta":
			if diags := gohcl.DecodeBody(block.Body, nil, &p.Meta); diags.HasErrors() {
				return nil, fmt.Errorf("decoding meta: %s", diags.Error())
			}
		case "palette":
			if paletteBlock != nil {
				return nil, fmt.Errorf("duplicate palette block at %s", block.DefRange().String())
			}
			paletteBlock = block
		default:
			return nil, fmt.Errorf("unknown block type %q at %s", block.Type, block.DefRange().String())
		}
	}

	if paletteBlock == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	if err := resolveEntries(paletteBlock.Body, p); err != nil {
		return nil, err
	}

	return p, nil
}

// resolveEntries evaluates palette attributes in declaration order, growing
// the evaluation context as entries resolve so later entries can reference
// earlier ones.
func resolveEntries(body *hclsyntax.Body, p *Palette) error {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: builtinFunctions(),
	}

	for _, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s: %s", attr.Name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("evaluating %s: expected a color string, got %s", attr.Name, val.Type().FriendlyName())
		}

		c, err := pigment.ParseHex(val.AsString())
		if err != nil {
			return fmt.Errorf("%s: %w", attr.Name, err)
		}

		p.Colors[attr.Name] = c
		p.Order = append(p.Order, attr.Name)

		// Entries resolve to bare names and to the palette.* object.
		ctx.Variables[attr.Name] = cty.StringVal(c.Hex())
		ctx.Variables["palette"] = paletteObject(p)
	}

	return nil
}

func paletteObject(p *Palette) cty.Value {
	vals := make(map[string]cty.Value, len(p.Colors))
	for name, c := range p.Colors {
		vals[name] = cty.StringVal(c.Hex())
	}
	return cty.ObjectVal(vals)
}

package pigment

import "strings"

// SVG 1.0 color keywords as 8-bit RGB values.
// http://www.w3.org/TR/SVG/types.html#ColorKeywords
var (
	AliceBlue            = Rgb[uint8]{0xF0, 0xF8, 0xFF}
	AntiqueWhite         = Rgb[uint8]{0xFA, 0xEB, 0xD7}
	Aqua                 = Rgb[uint8]{0x00, 0xFF, 0xFF}
	Aquamarine           = Rgb[uint8]{0x7F, 0xFF, 0xD4}
	Azure                = Rgb[uint8]{0xF0, 0xFF, 0xFF}
	Beige                = Rgb[uint8]{0xF5, 0xF5, 0xDC}
	Bisque               = Rgb[uint8]{0xFF, 0xE4, 0xC4}
	Black                = Rgb[uint8]{0x00, 0x00, 0x00}
	BlanchedAlmond       = Rgb[uint8]{0xFF, 0xEB, 0xCD}
	Blue                 = Rgb[uint8]{0x00, 0x00, 0xFF}
	BlueViolet           = Rgb[uint8]{0x8A, 0x2B, 0xE2}
	Brown                = Rgb[uint8]{0xA5, 0x2A, 0x2A}
	Burlywood            = Rgb[uint8]{0xDE, 0xB8, 0x87}
	CadetBlue            = Rgb[uint8]{0x5F, 0x9E, 0xA0}
	Chartreuse           = Rgb[uint8]{0x7F, 0xFF, 0x00}
	Chocolate            = Rgb[uint8]{0xD2, 0x69, 0x1E}
	Coral                = Rgb[uint8]{0xFF, 0x7F, 0x50}
	CornflowerBlue       = Rgb[uint8]{0x64, 0x95, 0xED}
	Cornsilk             = Rgb[uint8]{0xFF, 0xF8, 0xDC}
	Crimson              = Rgb[uint8]{0xDC, 0x14, 0x3C}
	Cyan                 = Rgb[uint8]{0x00, 0xFF, 0xFF}
	DarkBlue             = Rgb[uint8]{0x00, 0x00, 0x8B}
	DarkCyan             = Rgb[uint8]{0x00, 0x8B, 0x8B}
	DarkGoldenrod        = Rgb[uint8]{0xB8, 0x86, 0x0B}
	DarkGray             = Rgb[uint8]{0xA9, 0xA9, 0xA9}
	DarkGreen            = Rgb[uint8]{0x00, 0x64, 0x00}
	DarkKhaki            = Rgb[uint8]{0xBD, 0xB7, 0x6B}
	DarkMagenta          = Rgb[uint8]{0x8B, 0x00, 0x8B}
	DarkOliveGreen       = Rgb[uint8]{0x55, 0x6B, 0x2F}
	DarkOrange           = Rgb[uint8]{0xFF, 0x8C, 0x00}
	DarkOrchid           = Rgb[uint8]{0x99, 0x32, 0xCC}
	DarkRed              = Rgb[uint8]{0x8B, 0x00, 0x00}
	DarkSalmon           = Rgb[uint8]{0xE9, 0x96, 0x7A}
	DarkSeaGreen         = Rgb[uint8]{0x8F, 0xBC, 0x8F}
	DarkSlateBlue        = Rgb[uint8]{0x48, 0x3D, 0x8B}
	DarkSlateGray        = Rgb[uint8]{0x2F, 0x4F, 0x4F}
	DarkTurquoise        = Rgb[uint8]{0x00, 0xCE, 0xD1}
	DarkViolet           = Rgb[uint8]{0x94, 0x00, 0xD3}
	DeepPink             = Rgb[uint8]{0xFF, 0x14, 0x93}
	DeepSkyBlue          = Rgb[uint8]{0x00, 0xBF, 0xFF}
	DimGray              = Rgb[uint8]{0x69, 0x69, 0x69}
	DodgerBlue           = Rgb[uint8]{0x1E, 0x90, 0xFF}
	Firebrick            = Rgb[uint8]{0xB2, 0x22, 0x22}
	FloralWhite          = Rgb[uint8]{0xFF, 0xFA, 0xF0}
	ForestGreen          = Rgb[uint8]{0x22, 0x8B, 0x22}
	Fuchsia              = Rgb[uint8]{0xFF, 0x00, 0xFF}
	Gainsboro            = Rgb[uint8]{0xDC, 0xDC, 0xDC}
	GhostWhite           = Rgb[uint8]{0xF8, 0xF8, 0xFF}
	Gold                 = Rgb[uint8]{0xFF, 0xD7, 0x00}
	Goldenrod            = Rgb[uint8]{0xDA, 0xA5, 0x20}
	Gray                 = Rgb[uint8]{0x80, 0x80, 0x80}
	Green                = Rgb[uint8]{0x00, 0x80, 0x00}
	GreenYellow          = Rgb[uint8]{0xAD, 0xFF, 0x2F}
	Honeydew             = Rgb[uint8]{0xF0, 0xFF, 0xF0}
	HotPink              = Rgb[uint8]{0xFF, 0x69, 0xB4}
	IndianRed            = Rgb[uint8]{0xCD, 0x5C, 0x5C}
	Indigo               = Rgb[uint8]{0x4B, 0x00, 0x82}
	Ivory                = Rgb[uint8]{0xFF, 0xFF, 0xF0}
	Khaki                = Rgb[uint8]{0xF0, 0xE6, 0x8C}
	Lavender             = Rgb[uint8]{0xE6, 0xE6, 0xFA}
	LavenderBlush        = Rgb[uint8]{0xFF, 0xF0, 0xF5}
	LawnGreen            = Rgb[uint8]{0x7C, 0xFC, 0x00}
	LemonChiffon         = Rgb[uint8]{0xFF, 0xFA, 0xCD}
	LightBlue            = Rgb[uint8]{0xAD, 0xD8, 0xE6}
	LightCoral           = Rgb[uint8]{0xF0, 0x80, 0x80}
	LightCyan            = Rgb[uint8]{0xE0, 0xFF, 0xFF}
	LightGoldenrodYellow = Rgb[uint8]{0xFA, 0xFA, 0xD2}
	LightGreen           = Rgb[uint8]{0x90, 0xEE, 0x90}
	LightGrey            = Rgb[uint8]{0xD3, 0xD3, 0xD3}
	LightPink            = Rgb[uint8]{0xFF, 0xB6, 0xC1}
	LightSalmon          = Rgb[uint8]{0xFF, 0xA0, 0x7A}
	LightSeaGreen        = Rgb[uint8]{0x20, 0xB2, 0xAA}
	LightSkyBlue         = Rgb[uint8]{0x87, 0xCE, 0xFA}
	LightSlateGray       = Rgb[uint8]{0x77, 0x88, 0x99}
	LightSteelBlue       = Rgb[uint8]{0xB0, 0xC4, 0xDE}
	LightYellow          = Rgb[uint8]{0xFF, 0xFF, 0xE0}
	Lime                 = Rgb[uint8]{0x00, 0xFF, 0x00}
	LimeGreen            = Rgb[uint8]{0x32, 0xCD, 0x32}
	Linen                = Rgb[uint8]{0xFA, 0xF0, 0xE6}
	Magenta              = Rgb[uint8]{0xFF, 0x00, 0xFF}
	Maroon               = Rgb[uint8]{0x80, 0x00, 0x00}
	MediumAquamarine     = Rgb[uint8]{0x66, 0xCD, 0xAA}
	MediumBlue           = Rgb[uint8]{0x00, 0x00, 0xCD}
	MediumOrchid         = Rgb[uint8]{0xBA, 0x55, 0xD3}
	MediumPurple         = Rgb[uint8]{0x93, 0x70, 0xDB}
	MediumSeaGreen       = Rgb[uint8]{0x3C, 0xB3, 0x71}
	MediumSlateBlue      = Rgb[uint8]{0x7B, 0x68, 0xEE}
	MediumSpringGreen    = Rgb[uint8]{0x00, 0xFA, 0x9A}
	MediumTurquoise      = Rgb[uint8]{0x48, 0xD1, 0xCC}
	MediumVioletRed      = Rgb[uint8]{0xC7, 0x15, 0x85}
	MidnightBlue         = Rgb[uint8]{0x19, 0x19, 0x70}
	MintCream            = Rgb[uint8]{0xF5, 0xFF, 0xFA}
	MistyRose            = Rgb[uint8]{0xFF, 0xE4, 0xE1}
	Moccasin             = Rgb[uint8]{0xFF, 0xE4, 0xB5}
	NavajoWhite          = Rgb[uint8]{0xFF, 0xDE, 0xAD}
	Navy                 = Rgb[uint8]{0x00, 0x00, 0x80}
	OldLace              = Rgb[uint8]{0xFD, 0xF5, 0xE6}
	Olive                = Rgb[uint8]{0x80, 0x80, 0x00}
	OliveDrab            = Rgb[uint8]{0x6B, 0x8E, 0x23}
	Orange               = Rgb[uint8]{0xFF, 0xA5, 0x00}
	OrangeRed            = Rgb[uint8]{0xFF, 0x45, 0x00}
	Orchid               = Rgb[uint8]{0xDA, 0x70, 0xD6}
	PaleGoldenrod        = Rgb[uint8]{0xEE, 0xE8, 0xAA}
	PaleGreen            = Rgb[uint8]{0x98, 0xFB, 0x98}
	PaleVioletRed        = Rgb[uint8]{0xDB, 0x70, 0x93}
	PapayaWhip           = Rgb[uint8]{0xFF, 0xEF, 0xD5}
	PeachPuff            = Rgb[uint8]{0xFF, 0xDA, 0xB9}
	Peru                 = Rgb[uint8]{0xCD, 0x85, 0x3F}
	Pink                 = Rgb[uint8]{0xFF, 0xC0, 0xCB}
	Plum                 = Rgb[uint8]{0xDD, 0xA0, 0xDD}
	PowderBlue           = Rgb[uint8]{0xB0, 0xE0, 0xE6}
	Purple               = Rgb[uint8]{0x80, 0x00, 0x80}
	Red                  = Rgb[uint8]{0xFF, 0x00, 0x00}
	RosyBrown            = Rgb[uint8]{0xBC, 0x8F, 0x8F}
	RoyalBlue            = Rgb[uint8]{0x41, 0x69, 0xE1}
	SaddleBrown          = Rgb[uint8]{0x8B, 0x45, 0x13}
	Salmon               = Rgb[uint8]{0xFA, 0x80, 0x72}
	SandyBrown           = Rgb[uint8]{0xFA, 0xA4, 0x60}
	SeaGreen             = Rgb[uint8]{0x2E, 0x8B, 0x57}
	Seashell             = Rgb[uint8]{0xFF, 0xF5, 0xEE}
	Sienna               = Rgb[uint8]{0xA0, 0x52, 0x2D}
	Silver               = Rgb[uint8]{0xC0, 0xC0, 0xC0}
	SkyBlue              = Rgb[uint8]{0x87, 0xCE, 0xEB}
	SlateBlue            = Rgb[uint8]{0x6A, 0x5A, 0xCD}
	SlateGray            = Rgb[uint8]{0x70, 0x80, 0x90}
	Snow                 = Rgb[uint8]{0xFF, 0xFA, 0xFA}
	SpringGreen          = Rgb[uint8]{0x00, 0xFF, 0x7F}
	SteelBlue            = Rgb[uint8]{0x46, 0x82, 0xB4}
	Tan                  = Rgb[uint8]{0xD2, 0xB4, 0x8C}
	Teal                 = Rgb[uint8]{0x00, 0x80, 0x80}
	Thistle              = Rgb[uint8]{0xD8, 0xBF, 0xD8}
	Tomato               = Rgb[uint8]{0xFF, 0x63, 0x47}
	Turquoise            = Rgb[uint8]{0x40, 0xE0, 0xD0}
	Violet               = Rgb[uint8]{0xEE, 0x82, 0xEE}
	Wheat                = Rgb[uint8]{0xF5, 0xDE, 0xB3}
	White                = Rgb[uint8]{0xFF, 0xFF, 0xFF}
	WhiteSmoke           = Rgb[uint8]{0xF5, 0xF5, 0xF5}
	Yellow               = Rgb[uint8]{0xFF, 0xFF, 0x00}
	YellowGreen          = Rgb[uint8]{0x9A, 0xCD, 0x32}
)

// Names maps lowercase SVG keyword names to their colors.
var Names = map[string]Rgb[uint8]{
	"aliceblue":            AliceBlue,
	"antiquewhite":         AntiqueWhite,
	"aqua":                 Aqua,
	"aquamarine":           Aquamarine,
	"azure":                Azure,
	"beige":                Beige,
	"bisque":               Bisque,
	"black":                Black,
	"blanchedalmond":       BlanchedAlmond,
	"blue":                 Blue,
	"blueviolet":           BlueViolet,
	"brown":                Brown,
	"burlywood":            Burlywood,
	"cadetblue":            CadetBlue,
	"chartreuse":           Chartreuse,
	"chocolate":            Chocolate,
	"coral":                Coral,
	"cornflowerblue":       CornflowerBlue,
	"cornsilk":             Cornsilk,
	"crimson":              Crimson,
	"cyan":                 Cyan,
	"darkblue":             DarkBlue,
	"darkcyan":             DarkCyan,
	"darkgoldenrod":        DarkGoldenrod,
	"darkgray":             DarkGray,
	"darkgreen":            DarkGreen,
	"darkkhaki":            DarkKhaki,
	"darkmagenta":          DarkMagenta,
	"darkolivegreen":       DarkOliveGreen,
	"darkorange":           DarkOrange,
	"darkorchid":           DarkOrchid,
	"darkred":              DarkRed,
	"darksalmon":           DarkSalmon,
	"darkseagreen":         DarkSeaGreen,
	"darkslateblue":        DarkSlateBlue,
	"darkslategray":        DarkSlateGray,
	"darkturquoise":        DarkTurquoise,
	"darkviolet":           DarkViolet,
	"deeppink":             DeepPink,
	"deepskyblue":          DeepSkyBlue,
	"dimgray":              DimGray,
	"dodgerblue":           DodgerBlue,
	"firebrick":            Firebrick,
	"floralwhite":          FloralWhite,
	"forestgreen":          ForestGreen,
	"fuchsia":              Fuchsia,
	"gainsboro":            Gainsboro,
	"ghostwhite":           GhostWhite,
	"gold":                 Gold,
	"goldenrod":            Goldenrod,
	"gray":                 Gray,
	"green":                Green,
	"greenyellow":          GreenYellow,
	"honeydew":             Honeydew,
	"hotpink":              HotPink,
	"indianred":            IndianRed,
	"indigo":               Indigo,
	"ivory":                Ivory,
	"khaki":                Khaki,
	"lavender":             Lavender,
	"lavenderblush":        LavenderBlush,
	"lawngreen":            LawnGreen,
	"lemonchiffon":         LemonChiffon,
	"lightblue":            LightBlue,
	"lightcoral":           LightCoral,
	"lightcyan":            LightCyan,
	"lightgoldenrodyellow": LightGoldenrodYellow,
	"lightgreen":           LightGreen,
	"lightgrey":            LightGrey,
	"lightpink":            LightPink,
	"lightsalmon":          LightSalmon,
	"lightseagreen":        LightSeaGreen,
	"lightskyblue":         LightSkyBlue,
	"lightslategray":       LightSlateGray,
	"lightsteelblue":       LightSteelBlue,
	"lightyellow":          LightYellow,
	"lime":                 Lime,
	"limegreen":            LimeGreen,
	"linen":                Linen,
	"magenta":              Magenta,
	"maroon":               Maroon,
	"mediumaquamarine":     MediumAquamarine,
	"mediumblue":           MediumBlue,
	"mediumorchid":         MediumOrchid,
	"mediumpurple":         MediumPurple,
	"mediumseagreen":       MediumSeaGreen,
	"mediumslateblue":      MediumSlateBlue,
	"mediumspringgreen":    MediumSpringGreen,
	"mediumturquoise":      MediumTurquoise,
	"mediumvioletred":      MediumVioletRed,
	"midnightblue":         MidnightBlue,
	"mintcream":            MintCream,
	"mistyrose":            MistyRose,
	"moccasin":             Moccasin,
	"navajowhite":          NavajoWhite,
	"navy":                 Navy,
	"oldlace":              OldLace,
	"olive":                Olive,
	"olivedrab":            OliveDrab,
	"orange":               Orange,
	"orangered":            OrangeRed,
	"orchid":               Orchid,
	"palegoldenrod":        PaleGoldenrod,
	"palegreen":            PaleGreen,
	"palevioletred":        PaleVioletRed,
	"papayawhip":           PapayaWhip,
	"peachpuff":            PeachPuff,
	"peru":                 Peru,
	"pink":                 Pink,
	"plum":                 Plum,
	"powderblue":           PowderBlue,
	"purple":               Purple,
	"red":                  Red,
	"rosybrown":            RosyBrown,
	"royalblue":            RoyalBlue,
	"saddlebrown":          SaddleBrown,
	"salmon":               Salmon,
	"sandybrown":           SandyBrown,
	"seagreen":             SeaGreen,
	"seashell":             Seashell,
	"sienna":               Sienna,
	"silver":               Silver,
	"skyblue":              SkyBlue,
	"slateblue":            SlateBlue,
	"slategray":            SlateGray,
	"snow":                 Snow,
	"springgreen":          SpringGreen,
	"steelblue":            SteelBlue,
	"tan":                  Tan,
	"teal":                 Teal,
	"thistle":              Thistle,
	"tomato":               Tomato,
	"turquoise":            Turquoise,
	"violet":               Violet,
	"wheat":                Wheat,
	"white":                White,
	"whitesmoke":           WhiteSmoke,
	"yellow":               Yellow,
	"yellowgreen":          YellowGreen,
}

// ColorByName looks up an SVG keyword color, case-insensitively.
func ColorByName(name string) (Rgb[uint8], bool) {
	c, ok := Names[strings.ToLower(name)]
	return c, ok
}

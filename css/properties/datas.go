package properties

import "github.com/flowrender/flowrender/utils"

var propsNames = [NbProperties]string{
	PBottom:      "bottom",
	PClear:       "clear",
	PDirection:   "direction",
	PDisplay:     "display",
	PFloat:       "float",
	PLeft:        "left",
	PRight:       "right",
	PTop:         "top",
	PPosition:    "position",
	PUnicodeBidi: "unicode-bidi",

	PBorderBottomStyle: "border-bottom-style",
	PBorderBottomWidth: "border-bottom-width",
	PMarginBottom:      "margin-bottom",
	PPaddingBottom:     "padding-bottom",

	PBorderLeftStyle: "border-left-style",
	PBorderLeftWidth: "border-left-width",
	PMarginLeft:      "margin-left",
	PPaddingLeft:     "padding-left",

	PBorderRightStyle: "border-right-style",
	PBorderRightWidth: "border-right-width",
	PMarginRight:      "margin-right",
	PPaddingRight:     "padding-right",

	PBorderTopStyle: "border-top-style",
	PBorderTopWidth: "border-top-width",
	PMarginTop:      "margin-top",
	PPaddingTop:     "padding-top",

	PFontSize:    "font-size",
	PLineHeight:  "line-height",
	PWhiteSpace:  "white-space",
	PWordSpacing: "word-spacing",

	PHeight:    "height",
	PMaxHeight: "max-height",
	PMaxWidth:  "max-width",
	PMinHeight: "min-height",
	PMinWidth:  "min-width",
	PWidth:     "width",
}

// PropsFromNames is the reverse mapping of the property names.
var PropsFromNames = map[string]KnownProp{}

func init() {
	for p, name := range propsNames {
		if name != "" {
			PropsFromNames[name] = KnownProp(p)
		}
	}
}

// InitialValues stores the default values for the CSS properties.
// See CSS 2.1: https://www.w3.org/TR/CSS21/propidx.html
var InitialValues = Properties{
	PBottom:      SToV("auto"),
	PClear:       String("none"),
	PDirection:   String("ltr"),
	PDisplay:     String("inline"),
	PFloat:       String("none"),
	PLeft:        SToV("auto"),
	PRight:       SToV("auto"),
	PTop:         SToV("auto"),
	PPosition:    String("static"),
	PUnicodeBidi: String("normal"),

	PBorderBottomStyle: String("none"),
	PBorderBottomWidth: FToV(3), // computed value for "medium"
	PMarginBottom:      ZeroPixels.ToValue(),
	PPaddingBottom:     ZeroPixels.ToValue(),

	PBorderLeftStyle: String("none"),
	PBorderLeftWidth: FToV(3),
	PMarginLeft:      ZeroPixels.ToValue(),
	PPaddingLeft:     ZeroPixels.ToValue(),

	PBorderRightStyle: String("none"),
	PBorderRightWidth: FToV(3),
	PMarginRight:      ZeroPixels.ToValue(),
	PPaddingRight:     ZeroPixels.ToValue(),

	PBorderTopStyle: String("none"),
	PBorderTopWidth: FToV(3),
	PMarginTop:      ZeroPixels.ToValue(),
	PPaddingTop:     ZeroPixels.ToValue(),

	PFontSize:    FToV(16), // actually medium, but we define medium from this
	PLineHeight:  SToV("normal"),
	PWhiteSpace:  String("normal"),
	PWordSpacing: FToV(0), // computed value for "normal"

	PHeight:    SToV("auto"),
	PMaxHeight: DimOrS{Dimension: Dimension{Value: Float(Inf), Unit: Px}}, // computed value for "none"
	PMaxWidth:  DimOrS{Dimension: Dimension{Value: Float(Inf), Unit: Px}},
	PMinHeight: ZeroPixels.ToValue(), // computed value for "auto"
	PMinWidth:  ZeroPixels.ToValue(),
	PWidth:     SToV("auto"),
}

// Inherited is the set of properties transmitted from the parent
// computed style when no declaration wins the cascade.
// http://www.w3.org/TR/CSS21/propidx.html
var Inherited = utils.NewSet(
	"direction",
	"font-size",
	"line-height",
	"white-space",
	"word-spacing",
)

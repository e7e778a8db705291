// Package validation turns parsed declarations into validated
// properties, expanding shorthands and dropping invalid input
// with a warning, per the CSS error handling rules.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flowrender/flowrender/logger"

	pa "github.com/flowrender/flowrender/css/parser"
	pr "github.com/flowrender/flowrender/css/properties"
)

// See http://www.w3.org/TR/CSS21/propidx.html

var (
	ErrInvalidValue = errors.New("invalid or unsupported value for a known CSS property")

	// LengthUnits maps unit names to the units resolved at computation time.
	LengthUnits = map[string]pr.Unit{
		"ex": pr.Ex, "em": pr.Em, "px": pr.Px, "pt": pr.Pt, "pc": pr.Pc,
		"in": pr.In, "cm": pr.Cm, "mm": pr.Mm, "q": pr.Q,
	}

	// Keyword border widths, as their computed pixel value.
	borderWidthKeywords = map[string]pr.Float{"thin": 1, "medium": 3, "thick": 5}
)

type Token = pa.Token

type validator func(tokens []Token) pr.CssProperty

// validators for the non-shorthand properties.
var validators = [pr.NbProperties]validator{
	pr.PBottom:   lengthPercOrAuto,
	pr.PLeft:     lengthPercOrAuto,
	pr.PRight:    lengthPercOrAuto,
	pr.PTop:      lengthPercOrAuto,
	pr.PClear:    clear,
	pr.PDirection:    direction,
	pr.PDisplay:      display,
	pr.PFloat:        floating,
	pr.PPosition:     position,
	pr.PUnicodeBidi:  unicodeBidi,

	pr.PBorderBottomStyle: borderStyle,
	pr.PBorderLeftStyle:   borderStyle,
	pr.PBorderRightStyle:  borderStyle,
	pr.PBorderTopStyle:    borderStyle,
	pr.PBorderBottomWidth: borderWidth,
	pr.PBorderLeftWidth:   borderWidth,
	pr.PBorderRightWidth:  borderWidth,
	pr.PBorderTopWidth:    borderWidth,

	pr.PMarginBottom: marginValue,
	pr.PMarginLeft:   marginValue,
	pr.PMarginRight:  marginValue,
	pr.PMarginTop:    marginValue,

	pr.PPaddingBottom: paddingValue,
	pr.PPaddingLeft:   paddingValue,
	pr.PPaddingRight:  paddingValue,
	pr.PPaddingTop:    paddingValue,

	pr.PFontSize:    fontSize,
	pr.PLineHeight:  lineHeight,
	pr.PWhiteSpace:  whiteSpace,
	pr.PWordSpacing: wordSpacing,

	pr.PHeight:    widthHeight,
	pr.PWidth:     widthHeight,
	pr.PMaxHeight: maxWidthHeight,
	pr.PMaxWidth:  maxWidthHeight,
	pr.PMinHeight: minWidthHeight,
	pr.PMinWidth:  minWidthHeight,
}

// ValidatedProperty is the cascade input: a known property and its
// declared value ("inherit", "initial" or a validated value).
type ValidatedProperty struct {
	Name  pr.KnownProp
	Value pr.DeclaredValue
}

// PreprocessDeclarations validates declarations, expanding shorthands
// and logging then dropping the invalid ones.
func PreprocessDeclarations(declarations []pa.Declaration) []ValidatedProperty {
	var out []ValidatedProperty
	for _, decl := range declarations {
		name := strings.ToLower(decl.Name)
		if expander, in := expanders[name]; in {
			expanded, err := expander(name, decl.Value)
			if err != nil {
				logger.WarningLogger.Printf("ignored `%s: %s` at %s: %s",
					decl.Name, pa.Serialize(decl.Value), decl.Pos(), err)
				continue
			}
			out = append(out, expanded...)
			continue
		}
		validated, err := validateNonShorthand(name, decl.Value)
		if err != nil {
			logger.WarningLogger.Printf("ignored `%s: %s` at %s: %s",
				decl.Name, pa.Serialize(decl.Value), decl.Pos(), err)
			continue
		}
		out = append(out, validated)
	}
	return out
}

func validateNonShorthand(name string, tokens []Token) (ValidatedProperty, error) {
	prop, known := pr.PropsFromNames[name]
	if !known {
		return ValidatedProperty{}, fmt.Errorf("unknown property %s", name)
	}

	var value pr.DeclaredValue
	switch getSingleKeyword(tokens) {
	case "initial":
		value = pr.Initial
	case "inherit":
		value = pr.Inherit
	default:
		function := validators[prop]
		if function == nil {
			return ValidatedProperty{}, fmt.Errorf("property %s not supported", name)
		}
		v := function(removeWhitespace(tokens))
		if v == nil {
			return ValidatedProperty{}, ErrInvalidValue
		}
		value = v
	}
	return ValidatedProperty{Name: prop, Value: value}, nil
}

func removeWhitespace(tokens []Token) []Token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if _, isWs := t.(pa.Whitespace); !isWs {
			out = append(out, t)
		}
	}
	return out
}

// If `token` is an identifier, return its lowercase name.
// Otherwise return the empty string.
func getKeyword(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return strings.ToLower(ident.Value)
	}
	return ""
}

// If `tokens` is a single identifier, return its lowercase name.
// Otherwise return the empty string.
func getSingleKeyword(tokens []Token) string {
	significant := removeWhitespace(tokens)
	if len(significant) == 1 {
		return getKeyword(significant[0])
	}
	return ""
}

// getLength returns a length from the token, or a zero Dimension
// for invalid input. A unitless zero is accepted as zero pixels.
func getLength(token Token, negative, percentage bool) pr.Dimension {
	switch token := token.(type) {
	case pa.Percentage:
		if percentage && (negative || token.ValueF >= 0) {
			return pr.NewDim(pr.Float(token.ValueF), pr.Perc)
		}
	case pa.Dimension:
		unit, isKnown := LengthUnits[token.Unit]
		if isKnown && (negative || token.ValueF >= 0) {
			return pr.NewDim(pr.Float(token.ValueF), unit)
		}
	case pa.Number:
		if token.ValueF == 0 {
			return pr.ZeroPixels
		}
	}
	return pr.Dimension{}
}

// <length> | <percentage> | auto
func lengthPercOrAuto(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "auto" {
		return pr.SToV("auto")
	}
	if dim := getLength(tokens[0], true, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

func marginValue(tokens []Token) pr.CssProperty { return lengthPercOrAuto(tokens) }

// <length> | <percentage>, non negative
func paddingValue(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “width“ and “height“ properties.
func widthHeight(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "auto" {
		return pr.SToV("auto")
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “max-width“ and “max-height“ properties.
func maxWidthHeight(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "none" {
		return pr.DimOrS{Dimension: pr.Dimension{Value: pr.Inf, Unit: pr.Px}}
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “min-width“ and “min-height“ properties.
func minWidthHeight(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "auto" {
		return pr.ZeroPixels.ToValue()
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “border-<side>-width“ properties.
func borderWidth(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if width, in := borderWidthKeywords[getKeyword(tokens[0])]; in {
		return pr.DimOrS{Dimension: pr.Dimension{Value: width, Unit: pr.Px}}
	}
	if dim := getLength(tokens[0], false, false); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “border-<side>-style“ properties.
func borderStyle(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset":
		return pr.String(keyword)
	}
	return nil
}

func display(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "block", "inline", "none":
		return pr.String(keyword)
	}
	return nil
}

func position(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "static", "relative", "absolute", "fixed":
		return pr.String(keyword)
	}
	return nil
}

func floating(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "left", "right", "none":
		return pr.String(keyword)
	}
	return nil
}

func clear(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "left", "right", "both", "none":
		return pr.String(keyword)
	}
	return nil
}

func direction(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "ltr", "rtl":
		return pr.String(keyword)
	}
	return nil
}

func unicodeBidi(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "normal", "embed", "bidi-override":
		return pr.String(keyword)
	}
	return nil
}

func whiteSpace(tokens []Token) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "normal", "pre", "nowrap", "pre-wrap", "pre-line":
		return pr.String(keyword)
	}
	return nil
}

// “font-size“ property: keywords are resolved here, relative units
// at computation time.
func fontSize(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if size, in := fontSizeKeywords[getKeyword(tokens[0])]; in {
		return pr.FToV(size)
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// Absolute keyword sizes, scaled from the initial font size.
// http://www.w3.org/TR/CSS21/fonts.html#value-def-absolute-size
var fontSizeKeywords = map[string]pr.Fl{
	"xx-small": 16 * 3 / 5.,
	"x-small":  16 * 3 / 4.,
	"small":    16 * 8 / 9.,
	"medium":   16,
	"large":    16 * 6 / 5.,
	"x-large":  16 * 3 / 2.,
	"xx-large": 16 * 2,
}

// “line-height“ property: normal, a unitless number, a length or
// a percentage.
func lineHeight(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "normal" {
		return pr.SToV("normal")
	}
	if number, ok := tokens[0].(pa.Number); ok && number.ValueF >= 0 {
		return pr.NewDim(pr.Float(number.ValueF), pr.Scalar).ToValue()
	}
	if dim := getLength(tokens[0], false, true); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

// “word-spacing“ property: normal or a length.
func wordSpacing(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if getKeyword(tokens[0]) == "normal" {
		return pr.FToV(0)
	}
	if dim := getLength(tokens[0], true, false); !dim.IsNone() {
		return dim.ToValue()
	}
	return nil
}

package validation

import (
	"fmt"

	pr "github.com/flowrender/flowrender/css/properties"
)

type expanderFunc func(name string, tokens []Token) ([]ValidatedProperty, error)

var expanders = map[string]expanderFunc{
	"margin":       expandFourSides,
	"padding":      expandFourSides,
	"border-width": expandFourSides,
	"border-style": expandFourSides,
	"border":       expandBorder,
}

// sides in the order shorthand values apply, per
// http://www.w3.org/TR/CSS21/box.html#propdef-margin
var sideNames = [4]string{"top", "right", "bottom", "left"}

// expandFourSides expands shorthands setting a value for each of the
// four sides of a box.
func expandFourSides(name string, tokens []Token) ([]ValidatedProperty, error) {
	tokens = removeWhitespace(tokens)
	var values [4][]Token
	switch len(tokens) {
	case 1:
		values = [4][]Token{tokens, tokens, tokens, tokens}
	case 2: // top and bottom, left and right
		values = [4][]Token{tokens[0:1], tokens[1:2], tokens[0:1], tokens[1:2]}
	case 3: // top, left and right, bottom
		values = [4][]Token{tokens[0:1], tokens[1:2], tokens[2:3], tokens[1:2]}
	case 4:
		values = [4][]Token{tokens[0:1], tokens[1:2], tokens[2:3], tokens[3:4]}
	default:
		return nil, fmt.Errorf("expected 1 to 4 values, got %d", len(tokens))
	}

	out := make([]ValidatedProperty, 0, 4)
	for i, side := range sideNames {
		longhand := longhandName(name, side)
		validated, err := validateNonShorthand(longhand, values[i])
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", longhand, err)
		}
		out = append(out, validated)
	}
	return out, nil
}

func longhandName(shorthand, side string) string {
	switch shorthand {
	case "border-width":
		return "border-" + side + "-width"
	case "border-style":
		return "border-" + side + "-style"
	default: // margin, padding
		return shorthand + "-" + side
	}
}

// expandBorder expands the “border“ shorthand: a width and a style,
// in any order, applied to the four sides.
func expandBorder(_ string, tokens []Token) ([]ValidatedProperty, error) {
	tokens = removeWhitespace(tokens)
	if len(tokens) == 0 || len(tokens) > 2 {
		return nil, fmt.Errorf("expected 1 or 2 values, got %d", len(tokens))
	}
	var (
		width, style pr.CssProperty
	)
	for _, token := range tokens {
		if v := borderStyle([]Token{token}); v != nil && style == nil {
			style = v
			continue
		}
		if v := borderWidth([]Token{token}); v != nil && width == nil {
			width = v
			continue
		}
		return nil, ErrInvalidValue
	}
	if width == nil {
		width = pr.FToV(3) // medium
	}
	if style == nil {
		style = pr.String("none")
	}
	out := make([]ValidatedProperty, 0, 8)
	for _, side := range sideNames {
		out = append(out,
			ValidatedProperty{Name: pr.PropsFromNames["border-"+side+"-width"], Value: width},
			ValidatedProperty{Name: pr.PropsFromNames["border-"+side+"-style"], Value: style},
		)
	}
	return out, nil
}

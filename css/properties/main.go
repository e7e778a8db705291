// Package properties defines the types needed to handle the CSS properties
// understood by the layout engine.
// There are two steps between a raw declaration and a used value: cascading,
// which selects one declared value per property, and computation, which
// resolves relative units (but keeps percentages, which depend on layout).
package properties

import "github.com/flowrender/flowrender/utils"

type Fl = utils.Fl

// DeclaredValue is the most general CSS input for a property, one of:
//   - the special "initial" or "inherit" keywords
//   - a validated CssProperty
type DeclaredValue interface {
	isDeclaredValue()
}

// CssProperty is the final form of a css input, a.k.a. the computed value.
type CssProperty interface {
	DeclaredValue

	isCssProperty()
}

type DefaultValue uint8

const (
	Inherit DefaultValue = iota + 1
	Initial
)

func (DefaultValue) isDeclaredValue() {}

func (d DefaultValue) String() string {
	switch d {
	case Inherit:
		return "<inherit>"
	case Initial:
		return "<initial>"
	default:
		return "invalid value"
	}
}

// KnownProp efficiently encodes a known CSS property.
type KnownProp uint8

const (
	_ KnownProp = iota
	PBottom
	PClear
	PDirection
	PDisplay
	PFloat
	PLeft
	PRight
	PTop
	PPosition
	PUnicodeBidi

	// the following properties are grouped by side,
	// in the [bottom, left, right, top] order, so that
	// if side is an index (0, 1, 2 or 3), the property
	// is PBorderBottomStyle + side*4. DO NOT CHANGE the order.
	PBorderBottomStyle
	PBorderBottomWidth
	PMarginBottom
	PPaddingBottom

	PBorderLeftStyle
	PBorderLeftWidth
	PMarginLeft
	PPaddingLeft

	PBorderRightStyle
	PBorderRightWidth
	PMarginRight
	PPaddingRight

	PBorderTopStyle
	PBorderTopWidth
	PMarginTop
	PPaddingTop

	PFontSize
	PLineHeight
	PWhiteSpace
	PWordSpacing

	PHeight
	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	PWidth

	NbProperties
)

func (p KnownProp) String() string { return propsNames[p] }

// Properties is a general container for computed properties.
//
// In addition to the generic access, an attempt to provide a "type safe" way
// is provided through the GetXXX and SetXXX methods. It relies on the
// convention that all the keys should be present, and values never be nil.
type Properties map[KnownProp]CssProperty

// Copy returns a shallow copy.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// UpdateWith merges the entries from `other` into `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// ElementStyle defines a common interface to access computed style
// properties, linked to the element tree through the parent style.
type ElementStyle interface {
	StyleAccessor

	// Get is the generic method to access an arbitrary property.
	// Type accessors should be used when possible.
	Get(key KnownProp) CssProperty

	// Set is the generic method to set an arbitrary property.
	Set(key KnownProp, value CssProperty)

	// Copy returns a deep copy of the style.
	Copy() ElementStyle

	ParentStyle() ElementStyle
}

var _ StyleAccessor = Properties(nil)

package tree

import (
	"sort"

	"golang.org/x/net/html"

	pa "github.com/flowrender/flowrender/css/parser"
	pr "github.com/flowrender/flowrender/css/properties"
	"github.com/flowrender/flowrender/css/selector"
	"github.com/flowrender/flowrender/css/validation"
)

// The user agent stylesheet: the block-level HTML elements, hidden
// document metadata, and the default body margin.
const uaStylesheet = `
html, body, div, p, blockquote, pre, address, article, aside, footer,
header, main, nav, section, figure, figcaption, ul, ol, li, dl, dt, dd,
h1, h2, h3, h4, h5, h6, form, fieldset, hr { display: block }
head, style, script, title, meta, link, base { display: none }
body { margin: 8px }
pre { white-space: pre }
`

var uaRules = NewCSS(uaStylesheet)

// cascade origins, in increasing priority
const (
	originUserAgent = iota
	originAuthor
	originInline // style attribute
)

type weight struct {
	origin      int
	specificity selector.Specificity
	order       int
}

func (w weight) isAtLeast(other weight) bool {
	if w.origin != other.origin {
		return w.origin > other.origin
	}
	if w.specificity != other.specificity {
		return other.specificity.Less(w.specificity)
	}
	return w.order >= other.order
}

// StyleFor holds the computed style of every element of a document.
type StyleFor struct {
	styles map[*html.Node]pr.ElementStyle
}

// Get returns the computed style of the element, or nil if the
// element was not styled (e.g. not part of the document).
func (s StyleFor) Get(element *html.Node) pr.ElementStyle {
	return s.styles[element]
}

// GetAllComputedStyles resolves the computed style of every element
// of the document, cascading the UA stylesheet, the document's own
// <style> sheets, the given user stylesheets and style attributes.
func GetAllComputedStyles(doc *HTML, userSheets []CSS) *StyleFor {
	sheets := []struct {
		css    CSS
		origin int
	}{{uaRules, originUserAgent}}
	for _, css := range doc.StyleSheets() {
		sheets = append(sheets, struct {
			css    CSS
			origin int
		}{css, originAuthor})
	}
	for _, css := range userSheets {
		sheets = append(sheets, struct {
			css    CSS
			origin int
		}{css, originAuthor})
	}

	out := StyleFor{styles: make(map[*html.Node]pr.ElementStyle)}
	var resolve func(element *html.Node, parentStyle pr.ElementStyle)
	resolve = func(element *html.Node, parentStyle pr.ElementStyle) {
		cascaded := map[pr.KnownProp]struct {
			value pr.DeclaredValue
			w     weight
		}{}
		order := 0
		for _, sheet := range sheets {
			for _, rule := range sheet.css.rules {
				if !rule.sel.Match(element) {
					continue
				}
				w := weight{origin: sheet.origin, specificity: rule.sel.Specificity(), order: order}
				for _, decl := range rule.declarations {
					if prev, in := cascaded[decl.Name]; !in || w.isAtLeast(prev.w) {
						cascaded[decl.Name] = struct {
							value pr.DeclaredValue
							w     weight
						}{decl.Value, w}
					}
				}
				order++
			}
		}
		// the style attribute wins over any selector
		if inline := attrValue(element, "style"); inline != "" {
			declarations, _ := pa.ParseDeclarationList(inline)
			w := weight{origin: originInline, order: order}
			for _, decl := range validation.PreprocessDeclarations(declarations) {
				cascaded[decl.Name] = struct {
					value pr.DeclaredValue
					w     weight
				}{decl.Value, w}
			}
		}

		declared := make(map[pr.KnownProp]pr.DeclaredValue, len(cascaded))
		for prop, entry := range cascaded {
			declared[prop] = entry.value
		}
		style := ComputedFromCascaded(declared, parentStyle)
		out.styles[element] = style

		for child := element.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode {
				resolve(child, style)
			}
		}
	}
	resolve(doc.Root, nil)
	return &out
}

func attrValue(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// ComputedFromCascaded resolves the computed values from the
// cascaded declarations and the parent computed style (nil for the
// root element).
//
// Relative font units resolve against the element's own font size;
// percentages are kept as computed values, since they depend on
// layout (except on line-height, which resolves against the font
// size). `inherit` copies the parent's computed value verbatim, so
// an inherited percentage re-resolves against the child's own
// containing block.
func ComputedFromCascaded(cascaded map[pr.KnownProp]pr.DeclaredValue, parentStyle pr.ElementStyle) pr.ElementStyle {
	specified := make(pr.Properties, len(pr.InitialValues))

	// sorted iteration, so that resolution order is deterministic
	props := make([]pr.KnownProp, 0, len(pr.InitialValues))
	for prop := range pr.InitialValues {
		props = append(props, prop)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })

	for _, prop := range props {
		declared, in := cascaded[prop]
		if !in {
			if parentStyle != nil && pr.Inherited.Has(prop.String()) {
				specified[prop] = parentStyle.Get(prop)
			} else {
				specified[prop] = pr.InitialValues[prop]
			}
			continue
		}
		switch declared {
		case pr.Inherit:
			if parentStyle != nil {
				specified[prop] = parentStyle.Get(prop)
			} else {
				specified[prop] = pr.InitialValues[prop]
			}
		case pr.Initial:
			specified[prop] = pr.InitialValues[prop]
		default:
			specified[prop] = declared.(pr.CssProperty)
		}
	}

	computeValues(specified, parentStyle)
	return NewComputedStyle(specified, parentStyle)
}

// x-height approximation, when no font metrics are available
const exRatio = 0.5

// computeValues resolves relative and absolute units to pixels,
// in place. Percentages are untouched.
func computeValues(style pr.Properties, parentStyle pr.ElementStyle) {
	parentFontSize := pr.InitialValues.GetFontSize().Value
	if parentStyle != nil {
		parentFontSize = parentStyle.GetFontSize().Value
	}

	// font-size first: the other properties resolve against it
	fontSize := style.GetFontSize()
	switch fontSize.Unit {
	case pr.Em:
		fontSize = pr.FToV(pr.Fl(fontSize.Value * parentFontSize))
	case pr.Ex:
		fontSize = pr.FToV(pr.Fl(fontSize.Value * parentFontSize * exRatio))
	case pr.Perc:
		fontSize = pr.FToV(pr.Fl(fontSize.Value * parentFontSize / 100))
	default:
		fontSize = lengthToPixels(fontSize, 0)
	}
	style.SetFontSize(fontSize)

	for _, prop := range lengthProps {
		style[prop] = lengthToPixels(style[prop].(pr.DimOrS), fontSize.Value)
	}

	// line-height percentages resolve now, against the font size
	lineHeight := style.GetLineHeight()
	switch lineHeight.Unit {
	case pr.Perc:
		lineHeight = pr.FToV(pr.Fl(lineHeight.Value * fontSize.Value / 100))
	case pr.Scalar: // unitless number: computed value is the number
	default:
		lineHeight = lengthToPixels(lineHeight, fontSize.Value)
	}
	style.SetLineHeight(lineHeight)

	// a border with style "none" has a used width of zero
	for _, side := range [4]pr.KnownProp{pr.PBorderBottomStyle, pr.PBorderLeftStyle, pr.PBorderRightStyle, pr.PBorderTopStyle} {
		switch style[side].(pr.String) {
		case "none", "hidden":
			style[side+1] = pr.FToV(0) // the matching PBorder<Side>Width
		}
	}
}

// the properties measured in lengths, all resolved the same way
var lengthProps = []pr.KnownProp{
	pr.PBottom, pr.PLeft, pr.PRight, pr.PTop,
	pr.PBorderBottomWidth, pr.PBorderLeftWidth, pr.PBorderRightWidth, pr.PBorderTopWidth,
	pr.PMarginBottom, pr.PMarginLeft, pr.PMarginRight, pr.PMarginTop,
	pr.PPaddingBottom, pr.PPaddingLeft, pr.PPaddingRight, pr.PPaddingTop,
	pr.PWordSpacing,
	pr.PHeight, pr.PMaxHeight, pr.PMaxWidth, pr.PMinHeight, pr.PMinWidth, pr.PWidth,
}

// lengthToPixels converts an absolute or font-relative length to
// pixels. Keywords and percentages pass through.
func lengthToPixels(v pr.DimOrS, fontSize pr.Float) pr.DimOrS {
	switch v.Unit {
	case pr.Em:
		return pr.FToV(pr.Fl(v.Value * fontSize))
	case pr.Ex:
		return pr.FToV(pr.Fl(v.Value * fontSize * exRatio))
	case pr.Px, pr.Perc, pr.Scalar:
		return v
	default:
		if v.S != "" || v.IsNone() {
			return v
		}
		return pr.FToV(pr.Fl(v.Value * pr.LengthsToPixels[v.Unit]))
	}
}

// computedStyle implements pr.ElementStyle.
type computedStyle struct {
	pr.Properties
	parent pr.ElementStyle
}

// NewComputedStyle wraps computed properties and the parent style
// into an ElementStyle.
func NewComputedStyle(props pr.Properties, parent pr.ElementStyle) pr.ElementStyle {
	return &computedStyle{Properties: props, parent: parent}
}

func (s *computedStyle) Get(key pr.KnownProp) pr.CssProperty    { return s.Properties[key] }
func (s *computedStyle) Set(key pr.KnownProp, v pr.CssProperty) { s.Properties[key] = v }
func (s *computedStyle) ParentStyle() pr.ElementStyle           { return s.parent }
func (s *computedStyle) Copy() pr.ElementStyle {
	return &computedStyle{Properties: s.Properties.Copy(), parent: s.parent}
}

// AnonymousStyle derives the style of an anonymous box: inherited
// properties are kept from the parent, everything else is reset to
// its initial value, and the box is block-level.
func AnonymousStyle(parent pr.ElementStyle) pr.ElementStyle {
	props := pr.InitialValues.Copy()
	for name := range pr.Inherited {
		prop := pr.PropsFromNames[name]
		props[prop] = parent.Get(prop)
	}
	props.SetDisplay("block")
	return NewComputedStyle(props, parent)
}

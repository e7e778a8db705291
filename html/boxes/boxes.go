// Package boxes defines the box tree built from a styled document,
// the input of the layout algorithms.
//
// Boxes are a tagged variant: one struct, with a Kind discriminant.
// Layout code switches on the tag, which keeps the algorithms
// exhaustive and inspectable.
package boxes

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	pr "github.com/flowrender/flowrender/css/properties"
	"github.com/flowrender/flowrender/html/tree"
)

// Point is a resolved (x, y) or (width, height) pair.
type Point [2]pr.Float

// MaybePoint is a Point whose components may be auto.
type MaybePoint [2]pr.MaybeFloat

// Kind discriminates the box variants.
type Kind uint8

const (
	BlockKind Kind = iota
	AnonymousBlockKind
	InlineKind
	AnonymousInlineKind
	TextKind
	LineKind
)

func (k Kind) String() string {
	switch k {
	case BlockKind:
		return "BlockBox"
	case AnonymousBlockKind:
		return "AnonymousBlockBox"
	case InlineKind:
		return "InlineBox"
	case AnonymousInlineKind:
		return "AnonymousInlineBox"
	case TextKind:
		return "TextBox"
	case LineKind:
		return "LineBox"
	default:
		return "<invalid box kind>"
	}
}

// Box is a node of the box tree. Geometry attributes hold used
// values, set during layout; before layout they are zero.
//
// PositionX and PositionY locate the top-left corner of the margin
// box; Width and Height are the content box dimensions.
type Box struct {
	Kind    Kind
	Style   pr.ElementStyle
	Element *html.Node // nil for anonymous boxes

	Children []*Box
	Text     []rune // only for TextKind

	PositionX, PositionY pr.Float

	Width, Height        pr.MaybeFloat
	MinWidth, MaxWidth   pr.MaybeFloat
	MinHeight, MaxHeight pr.MaybeFloat

	MarginTop, MarginRight, MarginBottom, MarginLeft     pr.MaybeFloat
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft pr.MaybeFloat

	BorderTopWidth, BorderRightWidth     pr.MaybeFloat
	BorderBottomWidth, BorderLeftWidth   pr.MaybeFloat

	// position offsets, resolved during layout
	Top, Right, Bottom, Left pr.MaybeFloat

	// clearance received by this box, nil when none
	Clearance pr.MaybeFloat

	IsForRootElement bool
}

func newBox(kind Kind, style pr.ElementStyle, element *html.Node, children []*Box) *Box {
	return &Box{Kind: kind, Style: style, Element: element, Children: children}
}

func NewBlockBox(style pr.ElementStyle, element *html.Node, children []*Box) *Box {
	return newBox(BlockKind, style, element, children)
}

func NewInlineBox(style pr.ElementStyle, element *html.Node, children []*Box) *Box {
	return newBox(InlineKind, style, element, children)
}

func NewTextBox(style pr.ElementStyle, element *html.Node, text []rune) *Box {
	b := newBox(TextKind, style, element, nil)
	b.Text = text
	return b
}

// AnonymousFrom creates an anonymous box deriving its style from
// `parent`: inherited properties are kept, the others reset.
func AnonymousFrom(parent *Box, kind Kind, children []*Box) *Box {
	return newBox(kind, tree.AnonymousStyle(parent.Style), nil, children)
}

func (b *Box) ElementTag() string {
	if b.Element != nil {
		return b.Element.Data
	}
	return ""
}

func (b *Box) String() string {
	if b.Kind == TextKind {
		return fmt.Sprintf("<TextBox %q>", string(b.Text))
	}
	return fmt.Sprintf("<%s %s>", b.Kind, b.ElementTag())
}

// IsBlockLevel returns true for boxes laid out in a block formatting
// context as siblings of other block-level boxes.
func (b *Box) IsBlockLevel() bool {
	switch b.Kind {
	case BlockKind, AnonymousBlockKind:
		return true
	}
	return false
}

// IsInlineLevel returns true for boxes participating in an inline
// formatting context.
func (b *Box) IsInlineLevel() bool {
	switch b.Kind {
	case InlineKind, AnonymousInlineKind, TextKind:
		return true
	}
	return false
}

func (b *Box) IsAnonymous() bool {
	switch b.Kind {
	case AnonymousBlockKind, AnonymousInlineKind, LineKind:
		return true
	}
	return b.Kind == TextKind && b.Element == nil
}

func (b *Box) IsFloated() bool {
	return b.Style.GetFloat() != "none"
}

func (b *Box) IsAbsolutelyPositioned() bool {
	switch b.Style.GetPosition() {
	case "absolute", "fixed":
		return true
	}
	return false
}

func (b *Box) IsInNormalFlow() bool {
	return !(b.IsFloated() || b.IsAbsolutelyPositioned())
}

// Copy returns a shallow copy of the box, sharing the children
// slice header but not the geometry.
func (b *Box) Copy() *Box {
	out := *b
	return &out
}

// CopyWithChildren returns a copy of the box with the given children.
func (b *Box) CopyWithChildren(children []*Box) *Box {
	out := *b
	out.Children = children
	return &out
}

// Deepcopy copies the whole subtree.
func (b *Box) Deepcopy() *Box {
	out := *b
	out.Children = make([]*Box, len(b.Children))
	for i, child := range b.Children {
		out.Children[i] = child.Deepcopy()
	}
	return &out
}

// Translate moves the box and its descendants.
func (b *Box) Translate(dx, dy pr.Float, ignoreFloats bool) {
	if dx == 0 && dy == 0 {
		return
	}
	b.PositionX += dx
	b.PositionY += dy
	for _, child := range b.Children {
		if ignoreFloats && child.IsFloated() {
			continue
		}
		child.Translate(dx, dy, ignoreFloats)
	}
}

func (b *Box) descendantsRec(out *[]*Box) {
	*out = append(*out, b)
	for _, child := range b.Children {
		child.descendantsRec(out)
	}
}

// Descendants returns the box and its whole subtree, in tree order.
func (b *Box) Descendants() []*Box {
	var out []*Box
	b.descendantsRec(&out)
	return out
}

// ----------------------- box model geometry -----------------------
// See https://www.w3.org/TR/CSS21/box.html

func (b *Box) PaddingWidth() pr.Float {
	return b.Width.V() + b.PaddingLeft.V() + b.PaddingRight.V()
}

func (b *Box) PaddingHeight() pr.Float {
	return b.Height.V() + b.PaddingTop.V() + b.PaddingBottom.V()
}

func (b *Box) BorderWidth() pr.Float {
	return b.PaddingWidth() + b.BorderLeftWidth.V() + b.BorderRightWidth.V()
}

func (b *Box) BorderHeight() pr.Float {
	return b.PaddingHeight() + b.BorderTopWidth.V() + b.BorderBottomWidth.V()
}

func (b *Box) MarginWidth() pr.Float {
	return b.BorderWidth() + b.MarginLeft.V() + b.MarginRight.V()
}

func (b *Box) MarginHeight() pr.Float {
	return b.BorderHeight() + b.MarginTop.V() + b.MarginBottom.V()
}

func (b *Box) BorderBoxX() pr.Float { return b.PositionX + b.MarginLeft.V() }
func (b *Box) BorderBoxY() pr.Float { return b.PositionY + b.MarginTop.V() }

func (b *Box) PaddingBoxX() pr.Float { return b.BorderBoxX() + b.BorderLeftWidth.V() }
func (b *Box) PaddingBoxY() pr.Float { return b.BorderBoxY() + b.BorderTopWidth.V() }

func (b *Box) ContentBoxX() pr.Float { return b.PaddingBoxX() + b.PaddingLeft.V() }
func (b *Box) ContentBoxY() pr.Float { return b.PaddingBoxY() + b.PaddingTop.V() }

// ContainingBlock returns the dimensions the box provides as a
// containing block for its in-flow descendants.
func (b *Box) ContainingBlock() MaybePoint { return MaybePoint{b.Width, b.Height} }

// debug helper
func (b *Box) dump(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(b.String())
	sb.WriteByte('\n')
	for _, child := range b.Children {
		child.dump(sb, indent+1)
	}
}

// DumpTree returns a textual representation of the subtree.
func (b *Box) DumpTree() string {
	var sb strings.Builder
	b.dump(&sb, 0)
	return sb.String()
}

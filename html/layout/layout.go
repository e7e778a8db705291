// Package layout transforms a box tree into a geometry tree, per the
// CSS2.1 visual formatting model: block layout with margin
// collapsing, floats and clearance, absolute positioning, and inline
// text with bidi support.
package layout

import (
	"errors"
	"fmt"

	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
	"github.com/flowrender/flowrender/html/tree"
	"github.com/flowrender/flowrender/text"
)

// ErrDepthExceeded is returned when the box tree nesting exceeds the
// recursion guard.
var ErrDepthExceeded = errors.New("maximum layout depth exceeded")

const maxLayoutDepth = 500

// typed panic payload, recovered at the Layout boundary
type depthError struct{}

// Geometry is the final resolved geometry of one box. X and Y locate
// the top-left corner of the border box; Width and Height are the
// content box dimensions.
type Geometry struct {
	X, Y, Width, Height pr.Float

	MarginTop, MarginRight, MarginBottom, MarginLeft         pr.Float
	BorderTopWidth, BorderRightWidth                         pr.Float
	BorderBottomWidth, BorderLeftWidth                       pr.Float
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft     pr.Float
}

// Result is the output of a layout pass.
type Result struct {
	// Root is the laid out box tree.
	Root *bo.Box
	// Geometry maps each box of the tree to its resolved geometry.
	Geometry map[*bo.Box]Geometry
}

// layoutContext stores the global state of one layout pass: the
// stack of float lists (one per block formatting context), the fixed
// boxes, and the recursion guard.
type layoutContext struct {
	measurer text.Measurer

	// floats of the current block formatting context
	excludedShapes      *[]*bo.Box
	excludedShapesLists [][]*bo.Box

	fixedBoxes []*bo.Box

	depth int
}

func (l *layoutContext) createBlockFormattingContext() {
	l.excludedShapesLists = append(l.excludedShapesLists, nil)
	l.excludedShapes = &l.excludedShapesLists[len(l.excludedShapesLists)-1]
}

// finishBlockFormattingContext pops the float list, first extending
// the root box's auto height down to the lowest float.
// See http://www.w3.org/TR/CSS2/visudet.html#root-height
func (l *layoutContext) finishBlockFormattingContext(rootBox *bo.Box) {
	if rootBox.Style.GetHeight().S == "auto" && len(*l.excludedShapes) != 0 {
		boxBottom := rootBox.ContentBoxY() + rootBox.Height.V()
		maxShapeBottom := boxBottom
		for _, shape := range *l.excludedShapes {
			if v := shape.PositionY + shape.MarginHeight(); v > maxShapeBottom {
				maxShapeBottom = v
			}
		}
		rootBox.Height = rootBox.Height.V() + maxShapeBottom - boxBottom
	}
	l.excludedShapesLists = l.excludedShapesLists[:len(l.excludedShapesLists)-1]
	if L := len(l.excludedShapesLists); L != 0 {
		l.excludedShapes = &l.excludedShapesLists[L-1]
	} else {
		l.excludedShapes = nil
	}
}

func (l *layoutContext) enter() {
	l.depth++
	if l.depth > maxLayoutDepth {
		panic(depthError{})
	}
}

func (l *layoutContext) leave() { l.depth-- }

// Layout parses the document's styles, builds its box tree and lays
// it out in a viewport of the given size. The text measurer defaults
// to text.AhemMeasurer.
func Layout(doc *tree.HTML, viewportWidth, viewportHeight pr.Fl, measurer text.Measurer,
	userSheets ...tree.CSS,
) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(depthError); ok {
				result, err = nil, fmt.Errorf("layout aborted: %w", ErrDepthExceeded)
				return
			}
			panic(r)
		}
	}()

	styleFor := tree.GetAllComputedStyles(doc, userSheets)
	rootBox := bo.BuildFormattingStructure(doc, styleFor)
	if rootBox == nil {
		return &Result{Geometry: map[*bo.Box]Geometry{}}, nil
	}
	if measurer == nil {
		measurer = text.AhemMeasurer{}
	}

	context := &layoutContext{measurer: measurer}

	// The initial containing block has the dimensions of the viewport
	// and the direction of the root element.
	viewport := &bo.Box{
		Kind:   bo.BlockKind,
		Style:  rootBox.Style,
		Width:  pr.Float(viewportWidth),
		Height: pr.Float(viewportHeight),
	}
	initBoxGeometry(viewport)

	context.createBlockFormattingContext()

	var (
		adjoiningMargins []pr.Float
		absoluteBoxes    []*bo.Box
	)
	rootBox.PositionX = 0
	rootBox.PositionY = 0
	blockLevelLayout(context, rootBox, viewport, &absoluteBoxes, &adjoiningMargins)

	for _, absBox := range absoluteBoxes {
		absoluteLayout(context, absBox, viewport)
	}
	// fixed descendants of fixed boxes may be found during the loop
	for i := 0; i < len(context.fixedBoxes); i++ {
		absoluteLayout(context, context.fixedBoxes[i], viewport)
	}

	context.finishBlockFormattingContext(rootBox)

	return &Result{Root: rootBox, Geometry: collectGeometry(rootBox)}, nil
}

// initBoxGeometry zeroes the used values which resolvePercentages
// would normally set.
func initBoxGeometry(box *bo.Box) {
	zero := pr.Float(0)
	box.MarginTop, box.MarginRight, box.MarginBottom, box.MarginLeft = zero, zero, zero, zero
	box.PaddingTop, box.PaddingRight, box.PaddingBottom, box.PaddingLeft = zero, zero, zero, zero
	box.BorderTopWidth, box.BorderRightWidth, box.BorderBottomWidth, box.BorderLeftWidth = zero, zero, zero, zero
}

func collectGeometry(root *bo.Box) map[*bo.Box]Geometry {
	out := make(map[*bo.Box]Geometry)
	for _, box := range root.Descendants() {
		out[box] = Geometry{
			X:      box.BorderBoxX(),
			Y:      box.BorderBoxY(),
			Width:  box.Width.V(),
			Height: box.Height.V(),

			MarginTop:    box.MarginTop.V(),
			MarginRight:  box.MarginRight.V(),
			MarginBottom: box.MarginBottom.V(),
			MarginLeft:   box.MarginLeft.V(),

			BorderTopWidth:    box.BorderTopWidth.V(),
			BorderRightWidth:  box.BorderRightWidth.V(),
			BorderBottomWidth: box.BorderBottomWidth.V(),
			BorderLeftWidth:   box.BorderLeftWidth.V(),

			PaddingTop:    box.PaddingTop.V(),
			PaddingRight:  box.PaddingRight.V(),
			PaddingBottom: box.PaddingBottom.V(),
			PaddingLeft:   box.PaddingLeft.V(),
		}
	}
	return out
}

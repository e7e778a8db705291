package layout

import (
	"fmt"

	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
)

// Layout for block-level and block-container boxes.

// blockLevelLayout lays out the block-level `box`, whose PositionX
// and PositionY have been set by the caller (PositionY not counting
// the margins still in `adjoiningMargins`).
// It returns the margins adjoining the bottom of the box and whether
// the box collapsed through.
func blockLevelLayout(context *layoutContext, box *bo.Box, containingBlock *bo.Box,
	absoluteBoxes *[]*bo.Box, adjoiningMargins *[]pr.Float,
) (bottomAdjoining []pr.Float, collapsingThrough bool) {
	resolvePercentages(box, containingBlock.ContainingBlock())

	if box.MarginTop == pr.AutoF {
		box.MarginTop = pr.Float(0)
	}
	if box.MarginBottom == pr.AutoF {
		box.MarginBottom = pr.Float(0)
	}

	collapsedMargin := collapseMargin(append(append([]pr.Float{}, *adjoiningMargins...), box.MarginTop.V()))
	box.Clearance = getClearance(context, box, collapsedMargin)
	if box.Clearance != nil {
		topBorderEdge := box.PositionY + collapsedMargin + box.Clearance.V()
		box.PositionY = topBorderEdge - box.MarginTop.V()
		adjoiningMargins = new([]pr.Float)
	}

	blockLevelWidth(box, containingBlock)
	return blockContainerLayout(context, box, absoluteBoxes, adjoiningMargins)
}

// blockLevelWidth solves the inline-axis equation for a block-level
// box in normal flow, then clamps the result to [min-width,
// max-width].
// https://www.w3.org/TR/CSS21/visudet.html#blockwidth
func blockLevelWidth(box *bo.Box, containingBlock *bo.Box) {
	blockLevelWidthNoMinMax(box, containingBlock)

	// https://www.w3.org/TR/CSS21/visudet.html#min-max-widths
	if box.MaxWidth != pr.AutoF && box.Width.V() > box.MaxWidth.V() {
		box.Width = box.MaxWidth
		resetAutoMargins(box)
		blockLevelWidthNoMinMax(box, containingBlock)
	}
	if box.Width.V() < box.MinWidth.V() {
		box.Width = box.MinWidth
		resetAutoMargins(box)
		blockLevelWidthNoMinMax(box, containingBlock)
	}
}

// restore the auto margins before re-solving with a clamped width
func resetAutoMargins(box *bo.Box) {
	if box.Style.GetMarginLeft().S == "auto" {
		box.MarginLeft = pr.AutoF
	}
	if box.Style.GetMarginRight().S == "auto" {
		box.MarginRight = pr.AutoF
	}
}

func blockLevelWidthNoMinMax(box *bo.Box, containingBlock *bo.Box) {
	// "cb" stands for "containing block"
	cbWidth := containingBlock.Width.V()
	direction := containingBlock.Style.GetDirection()

	marginL := box.MarginLeft
	marginR := box.MarginRight
	width := box.Width
	paddingL := box.PaddingLeft.V()
	paddingR := box.PaddingRight.V()
	borderL := box.BorderLeftWidth.V()
	borderR := box.BorderRightWidth.V()

	// Only margin-left, margin-right and width can be "auto".
	// We want:  width of containing block ==
	//               margin-left + border-left-width + padding-left + width
	//               + padding-right + border-right-width + margin-right

	paddingsPlusBorders := paddingL + paddingR + borderL + borderR
	if width != pr.AutoF {
		total := paddingsPlusBorders + width.V()
		if marginL != pr.AutoF {
			total += marginL.V()
		}
		if marginR != pr.AutoF {
			total += marginR.V()
		}
		if total > cbWidth {
			if marginL == pr.AutoF {
				marginL = pr.Float(0)
				box.MarginLeft = pr.Float(0)
			}
			if marginR == pr.AutoF {
				marginR = pr.Float(0)
				box.MarginRight = pr.Float(0)
			}
		}
	}
	if width != pr.AutoF && marginL != pr.AutoF && marginR != pr.AutoF {
		// The equation is over-constrained.
		if direction == "rtl" {
			box.PositionX += cbWidth - paddingsPlusBorders - width.V() - marginR.V() - marginL.V()
		} // Do nothing in ltr.
	}
	if width == pr.AutoF {
		if marginL == pr.AutoF {
			marginL = pr.Float(0)
			box.MarginLeft = pr.Float(0)
		}
		if marginR == pr.AutoF {
			marginR = pr.Float(0)
			box.MarginRight = pr.Float(0)
		}
		width = cbWidth - (paddingsPlusBorders + marginL.V() + marginR.V())
		box.Width = width
	}
	marginSum := cbWidth - paddingsPlusBorders - width.V()
	if marginL == pr.AutoF && marginR == pr.AutoF {
		box.MarginLeft = marginSum / 2.
		box.MarginRight = marginSum / 2.
	} else if marginL == pr.AutoF && marginR != pr.AutoF {
		box.MarginLeft = marginSum - marginR.V()
	} else if marginL != pr.AutoF && marginR == pr.AutoF {
		box.MarginRight = marginSum - marginL.V()
	}
}

// blockContainerLayout positions the children of `box` and sets its
// height. See https://www.w3.org/TR/CSS21/visuren.html#block-formatting
func blockContainerLayout(context *layoutContext, box *bo.Box,
	absoluteBoxes *[]*bo.Box, adjoiningMargins *[]pr.Float,
) (bottomAdjoining []pr.Float, collapsingThrough bool) {
	if !box.IsBlockLevel() {
		panic(fmt.Sprintf("expected a block container, got %s", box))
	}

	context.enter()
	defer context.leave()

	if establishesFormattingContext(box) {
		context.createBlockFormattingContext()
	}

	*adjoiningMargins = append(*adjoiningMargins, box.MarginTop.V())
	thisBoxAdjoiningMargins := adjoiningMargins

	collapsingWithChildren := !(pr.Is(box.BorderTopWidth) || pr.Is(box.PaddingTop) ||
		establishesFormattingContext(box) || box.IsForRootElement)
	var positionY pr.Float
	if collapsingWithChildren {
		positionY = box.PositionY
	} else {
		box.PositionY += collapseMargin(*adjoiningMargins) - box.MarginTop.V()
		adjoiningMargins = new([]pr.Float)
		positionY = box.ContentBoxY()
	}

	positionX := box.ContentBoxX()

	if box.Style.GetPosition() == "relative" {
		// New containing block, use a new absolute list
		absoluteBoxes = &[]*bo.Box{}
	}

	var newChildren []*bo.Box
	for _, child := range box.Children {
		child.PositionX = positionX
		child.PositionY = positionY // does not count margins in adjoiningMargins

		switch {
		case !child.IsInNormalFlow():
			outOfFlowLayout(context, box, child, absoluteBoxes, *adjoiningMargins)
			newChildren = append(newChildren, child)

		case child.Kind == bo.LineKind:
			// inline content prevents the margins from collapsing
			positionY += collapseMargin(*adjoiningMargins)
			adjoiningMargins = new([]pr.Float)
			lines, newPositionY := lineBoxLayout(context, child, box, positionY, absoluteBoxes)
			newChildren = append(newChildren, lines...)
			positionY = newPositionY

		default:
			if collapsingWithChildren && findLastInFlowChild(newChildren) == nil {
				// The first in-flow child: check whether it receives
				// clearance once the adjoining margins are collapsed.
				// If so, the box's own margins stop collapsing with
				// its children.
				resolvePercentages(child, box.ContainingBlock())
				childMarginTop := child.MarginTop
				if childMarginTop == pr.AutoF {
					childMarginTop = pr.Float(0)
				}
				newCollapsedMargin := collapseMargin(append(append([]pr.Float{}, *adjoiningMargins...), childMarginTop.V()))
				if getClearance(context, child, newCollapsedMargin) != nil {
					box.PositionY += collapseMargin(*adjoiningMargins) - box.MarginTop.V()
					adjoiningMargins = new([]pr.Float)
					collapsingWithChildren = false
					positionY = box.ContentBoxY()
					child.PositionX = box.ContentBoxX()
					child.PositionY = positionY
				}
			}
			positionY, adjoiningMargins = inFlowLayout(context, box, child,
				absoluteBoxes, adjoiningMargins, positionY)
			newChildren = append(newChildren, child)
		}
	}
	box.Children = newChildren

	if collapsingWithChildren {
		box.PositionY += collapseMargin(*thisBoxAdjoiningMargins) - box.MarginTop.V()
	}

	lastInFlowChild := findLastInFlowChild(newChildren)
	collapsingThrough = false
	if lastInFlowChild == nil {
		collapsedMargin := collapseMargin(*adjoiningMargins)
		// top and bottom margins of this box
		if (box.Height == pr.AutoF || box.Height == pr.Float(0)) &&
			getClearance(context, box, collapsedMargin) == nil &&
			box.MinHeight == pr.Float(0) && box.BorderTopWidth == pr.Float(0) && box.PaddingTop == pr.Float(0) &&
			box.BorderBottomWidth == pr.Float(0) && box.PaddingBottom == pr.Float(0) {
			collapsingThrough = true
		} else {
			positionY += collapsedMargin
			adjoiningMargins = new([]pr.Float)
		}
	} else {
		// the bottom margin of the last child and the bottom margin
		// of this box adjoin, unless the height is set
		if box.Height != pr.AutoF {
			// not adjoining; positionY is not used afterwards
			adjoiningMargins = new([]pr.Float)
		}
	}

	if pr.Is(box.BorderBottomWidth) || pr.Is(box.PaddingBottom) ||
		establishesFormattingContext(box) || box.IsForRootElement {
		positionY += collapseMargin(*adjoiningMargins)
		adjoiningMargins = new([]pr.Float)
	}

	if box.Height == pr.AutoF {
		box.Height = positionY - box.ContentBoxY()
	}

	if box.Style.GetPosition() == "relative" {
		// New containing block, resolve the layout of the absolute
		// descendants
		for _, absBox := range *absoluteBoxes {
			absoluteLayout(context, absBox, box)
		}
	}

	for _, child := range box.Children {
		relativePositioning(child, bo.Point{box.Width.V(), box.Height.V()})
	}

	if establishesFormattingContext(box) {
		context.finishBlockFormattingContext(box)
	}

	box.Height = pr.Max(pr.Min(box.Height.V(), box.MaxHeight.V()), box.MinHeight.V())

	return *adjoiningMargins, collapsingThrough
}

// inFlowLayout lays out one in-flow block-level child and returns
// the updated positionY and adjoining margins.
func inFlowLayout(context *layoutContext, box, child *bo.Box,
	absoluteBoxes *[]*bo.Box, adjoiningMargins *[]pr.Float, positionY pr.Float,
) (pr.Float, *[]pr.Float) {
	bottomAdjoining, collapsingThrough := blockLevelLayout(context, child, box, absoluteBoxes, adjoiningMargins)

	if !collapsingThrough {
		positionY = child.BorderBoxY() + child.BorderHeight()
	}

	nextAdjoining := append([]pr.Float{}, bottomAdjoining...)
	nextAdjoining = append(nextAdjoining, child.MarginBottom.V())
	adjoiningMargins = &nextAdjoining

	if child.Clearance != nil {
		if collapsingThrough {
			// A cleared box that collapses through keeps its top and
			// bottom margins collapsed together, isolated from the
			// parent's bottom margin.
			positionY = child.PositionY + collapseMargin(*adjoiningMargins)
			adjoiningMargins = new([]pr.Float)
		} else {
			positionY = child.BorderBoxY() + child.BorderHeight()
		}
	}

	return positionY, adjoiningMargins
}

func outOfFlowLayout(context *layoutContext, box *bo.Box, child *bo.Box,
	absoluteBoxes *[]*bo.Box, adjoiningMargins []pr.Float,
) {
	if child.IsAbsolutelyPositioned() {
		// record the static position; the box is laid out in a
		// post-pass, once its containing block is sized
		child.PositionY += collapseMargin(adjoiningMargins)
		if child.Style.GetPosition() == "fixed" {
			context.fixedBoxes = append(context.fixedBoxes, child)
		} else {
			*absoluteBoxes = append(*absoluteBoxes, child)
		}
	} else if child.IsFloated() {
		child.PositionY += collapseMargin(adjoiningMargins)
		floatLayout(context, child, box, absoluteBoxes)
	}
}

// relativePositioning translates the box if it is relatively
// positioned. https://www.w3.org/TR/CSS21/visuren.html#relative-positioning
func relativePositioning(box *bo.Box, containingBlock bo.Point) {
	if box.Style.GetPosition() == "relative" {
		resolvePositionPercentages(box, containingBlock)
		var translateX, translateY pr.Float
		if box.Left != pr.AutoF && box.Right != pr.AutoF {
			if box.Style.GetDirection() == "ltr" {
				translateX = box.Left.V()
			} else {
				translateX = -box.Right.V()
			}
		} else if box.Left != pr.AutoF {
			translateX = box.Left.V()
		} else if box.Right != pr.AutoF {
			translateX = -box.Right.V()
		}

		if box.Top != pr.AutoF {
			translateY = box.Top.V()
		} else if box.Bottom != pr.AutoF {
			translateY = -box.Bottom.V()
		}

		box.Translate(translateX, translateY, false)
	}
	if box.Kind == bo.LineKind {
		for _, child := range box.Children {
			relativePositioning(child, containingBlock)
		}
	}
}

func findLastInFlowChild(children []*bo.Box) *bo.Box {
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].IsInNormalFlow() {
			return children[i]
		}
	}
	return nil
}

// collapseMargin returns the amount of collapsed margin for a list
// of adjoining margins: the maximum of the positive margins plus the
// minimum of the negative ones.
func collapseMargin(adjoiningMargins []pr.Float) pr.Float {
	var maxPos, minNeg pr.Float
	for _, m := range adjoiningMargins {
		if m > maxPos {
			maxPos = m
		} else if m < minNeg {
			minNeg = m
		}
	}
	return maxPos + minNeg
}

// establishesFormattingContext returns whether a box establishes a
// new block formatting context.
// See https://www.w3.org/TR/CSS2/visuren.html#block-formatting
func establishesFormattingContext(box *bo.Box) bool {
	return box.IsFloated() || box.IsAbsolutelyPositioned()
}

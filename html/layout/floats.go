package layout

import (
	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
)

// Layout for floating boxes.
// See https://www.w3.org/TR/CSS21/visuren.html#floats

// floatLayout sets the width and position of the floating `box`, lays
// out its contents, and registers it as an excluded shape of the
// current block formatting context.
func floatLayout(context *layoutContext, box *bo.Box, containingBlock *bo.Box, absoluteBoxes *[]*bo.Box) {
	resolvePercentages(box, containingBlock.ContainingBlock())

	// auto margins resolve to 0 for floats
	if box.MarginLeft == pr.AutoF {
		box.MarginLeft = pr.Float(0)
	}
	if box.MarginRight == pr.AutoF {
		box.MarginRight = pr.Float(0)
	}
	if box.MarginTop == pr.AutoF {
		box.MarginTop = pr.Float(0)
	}
	if box.MarginBottom == pr.AutoF {
		box.MarginBottom = pr.Float(0)
	}

	if clearance := getClearance(context, box, 0); clearance != nil {
		box.PositionY += clearance.V()
	}

	floatWidth(context, box, containingBlock)

	var adjoiningMargins []pr.Float
	blockContainerLayout(context, box, absoluteBoxes, &adjoiningMargins)

	findFloatPosition(context, box, containingBlock)

	*context.excludedShapes = append(*context.excludedShapes, box)
}

// floatWidth resolves an auto width to shrink-to-fit, clamped to
// [min-width, max-width].
// https://www.w3.org/TR/CSS21/visudet.html#float-width
func floatWidth(context *layoutContext, box *bo.Box, containingBlock *bo.Box) {
	if box.Width != pr.AutoF {
		box.Width = pr.Max(pr.Min(box.Width.V(), box.MaxWidth.V()), box.MinWidth.V())
		return
	}
	availableWidth := containingBlock.Width.V() - box.MarginLeft.V() - box.MarginRight.V() -
		box.BorderLeftWidth.V() - box.BorderRightWidth.V() - box.PaddingLeft.V() - box.PaddingRight.V()
	width := shrinkToFit(context, box, pr.Max(0, availableWidth))
	box.Width = pr.Max(pr.Min(width, box.MaxWidth.V()), box.MinWidth.V())
}

// findFloatPosition moves the float as high and as far left (or
// right) as possible without overlapping earlier floats.
func findFloatPosition(context *layoutContext, box *bo.Box, containingBlock *bo.Box) {
	// a float cannot be higher than a previous one
	if shapes := *context.excludedShapes; len(shapes) != 0 {
		highestY := shapes[len(shapes)-1].PositionY
		if box.PositionY < highestY {
			box.Translate(0, highestY-box.PositionY, false)
		}
	}
	positionX, positionY, availableWidth := avoidCollisions(context, box, containingBlock, true)
	if box.Style.GetFloat() == "right" {
		positionX += availableWidth - box.MarginWidth()
	}
	box.Translate(positionX-box.PositionX, positionY-box.PositionY, false)
}

// avoidCollisions finds the highest position at or below the box's
// current position where it fits between the floats of the current
// formatting context. It returns the left bound, the final position
// and the width available between the floats at that position.
// With `outer`, the margin box is considered, else the border box.
func avoidCollisions(context *layoutContext, box *bo.Box, containingBlock *bo.Box, outer bool) (
	positionX, positionY, availableWidth pr.Float,
) {
	excludedShapes := *context.excludedShapes

	var boxWidth, boxHeight pr.Float
	if outer {
		positionY = box.PositionY
		boxWidth = box.MarginWidth()
		boxHeight = box.MarginHeight()
	} else {
		positionY = box.BorderBoxY()
		boxWidth = box.BorderWidth()
		boxHeight = box.BorderHeight()
	}

	maxLeftBound := containingBlock.ContentBoxX()
	maxRightBound := containingBlock.ContentBoxX() + containingBlock.Width.V()

	for {
		var collidingShapes []*bo.Box
		for _, shape := range excludedShapes {
			top, bottom := shape.PositionY, shape.PositionY+shape.MarginHeight()
			if (top < positionY && positionY < bottom) ||
				(top < positionY+boxHeight && positionY+boxHeight < bottom) ||
				(top >= positionY && bottom <= positionY+boxHeight) {
				collidingShapes = append(collidingShapes, shape)
			}
		}
		maxLeftBound = containingBlock.ContentBoxX()
		maxRightBound = containingBlock.ContentBoxX() + containingBlock.Width.V()
		if len(collidingShapes) == 0 {
			break
		}
		for _, shape := range collidingShapes {
			if shape.Style.GetFloat() == "left" {
				maxLeftBound = pr.Max(maxLeftBound, shape.PositionX+shape.MarginWidth())
			} else {
				maxRightBound = pr.Min(maxRightBound, shape.PositionX)
			}
		}
		if boxWidth > maxRightBound-maxLeftBound {
			// the box does not fit here, try below the highest
			// colliding float
			newPositionY := pr.Inf
			for _, shape := range collidingShapes {
				newPositionY = pr.Min(newPositionY, shape.PositionY+shape.MarginHeight())
			}
			if newPositionY > positionY {
				positionY = newPositionY
				continue
			}
		}
		break
	}

	positionX = maxLeftBound
	availableWidth = maxRightBound - maxLeftBound
	if !outer {
		positionX -= box.MarginLeft.V()
		positionY -= box.MarginTop.V()
	}
	return positionX, positionY, availableWidth
}

// getClearance returns the clearance of `box` with respect to the
// floats of the current formatting context: the distance the box must
// move down so that its top border edge sits below every applicable
// float. nil means no clearance applies.
// `collapsedMargin` is the margin collapsed above the box, counted in
// the hypothetical position of its top border edge.
// https://www.w3.org/TR/CSS21/visuren.html#flow-control
func getClearance(context *layoutContext, box *bo.Box, collapsedMargin pr.Float) pr.MaybeFloat {
	var clearance pr.MaybeFloat
	hypotheticalPosition := box.PositionY + collapsedMargin
	if context.excludedShapes == nil {
		return nil
	}
	clear := box.Style.GetClear()
	for _, excludedShape := range *context.excludedShapes {
		if clear == "both" || clear == excludedShape.Style.GetFloat() {
			shapeBottom := excludedShape.PositionY + excludedShape.MarginHeight()
			if hypotheticalPosition < shapeBottom {
				var current pr.Float
				if clearance != nil {
					current = clearance.V()
				}
				clearance = pr.Max(current, shapeBottom-hypotheticalPosition)
			}
		}
	}
	return clearance
}

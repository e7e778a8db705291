package layout

import (
	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
)

// Layout for absolutely positioned boxes.
// See https://www.w3.org/TR/CSS2/visudet.html#abs-non-replaced-width

// block is the containing block of an absolutely positioned box: the
// padding area of its closest positioned ancestor.
type block struct {
	X, Y, Width, Height pr.Float
}

type widthSolver = func(context *layoutContext, box *bo.Box, containingBlock block) (bool, pr.Float)

// handleMinMaxWidth wraps a width solver to run it again with the
// width clamped to [min-width, max-width] when needed.
// https://www.w3.org/TR/CSS21/visudet.html#min-max-widths
func handleMinMaxWidth(function widthSolver) widthSolver {
	return func(context *layoutContext, box *bo.Box, containingBlock block) (bool, pr.Float) {
		computedMarginL, computedMarginR := box.MarginLeft, box.MarginRight
		res1, res2 := function(context, box, containingBlock)
		if box.MaxWidth != pr.AutoF && box.Width.V() > box.MaxWidth.V() {
			box.Width = box.MaxWidth
			box.MarginLeft, box.MarginRight = computedMarginL, computedMarginR
			res1, res2 = function(context, box, containingBlock)
		}
		if box.Width.V() < box.MinWidth.V() {
			box.Width = box.MinWidth
			box.MarginLeft, box.MarginRight = computedMarginL, computedMarginR
			res1, res2 = function(context, box, containingBlock)
		}
		return res1, res2
	}
}

var absoluteWidth = handleMinMaxWidth(absoluteWidthNoMinMax)

func absoluteWidthNoMinMax(context *layoutContext, box *bo.Box, containingBlock block) (bool, pr.Float) {
	ltr := box.Style.ParentStyle() == nil || box.Style.ParentStyle().GetDirection() == "ltr"
	paddingsBorders := box.PaddingLeft.V() + box.PaddingRight.V() + box.BorderLeftWidth.V() + box.BorderRightWidth.V()

	marginL := box.MarginLeft
	marginR := box.MarginRight
	width := box.Width
	left := box.Left
	right := box.Right

	cbX, cbWidth := containingBlock.X, containingBlock.Width

	var translateX pr.Float = 0
	translateBoxWidth := false
	defaultTranslateX := cbX - box.PositionX
	if left == pr.AutoF && right == pr.AutoF && width == pr.AutoF {
		if marginL == pr.AutoF {
			box.MarginLeft = pr.Float(0)
		}
		if marginR == pr.AutoF {
			box.MarginRight = pr.Float(0)
		}
		availableWidth := cbWidth - (paddingsBorders + box.MarginLeft.V() + box.MarginRight.V())
		box.Width = shrinkToFit(context, box, availableWidth)
		if !ltr {
			translateBoxWidth = true
			translateX = defaultTranslateX + availableWidth
		}
	} else if left != pr.AutoF && right != pr.AutoF && width != pr.AutoF {
		widthForMargins := cbWidth - (right.V() + left.V() + width.V() + paddingsBorders)
		if marginL == pr.AutoF && marginR == pr.AutoF {
			if width.V()+paddingsBorders+right.V()+left.V() <= cbWidth {
				box.MarginLeft = widthForMargins / 2
				box.MarginRight = box.MarginLeft
			} else {
				if ltr {
					box.MarginLeft = pr.Float(0)
					box.MarginRight = widthForMargins
				} else {
					box.MarginLeft = widthForMargins
					box.MarginRight = pr.Float(0)
				}
			}
		} else if marginL == pr.AutoF {
			box.MarginLeft = widthForMargins
		} else if marginR == pr.AutoF {
			box.MarginRight = widthForMargins
		} else if ltr {
			// Over-constrained: ignore "right"
			box.MarginRight = widthForMargins
		} else {
			box.MarginLeft = widthForMargins
		}
		translateX = left.V() + defaultTranslateX
	} else {
		if marginL == pr.AutoF {
			box.MarginLeft = pr.Float(0)
		}
		if marginR == pr.AutoF {
			box.MarginRight = pr.Float(0)
		}
		spacing := paddingsBorders + box.MarginLeft.V() + box.MarginRight.V()
		if left == pr.AutoF && width == pr.AutoF {
			box.Width = shrinkToFit(context, box, cbWidth-spacing-right.V())
			translateX = cbWidth - right.V() - spacing + defaultTranslateX
			translateBoxWidth = true
		} else if left == pr.AutoF && right == pr.AutoF {
			// Keep the static position
			if !ltr {
				availableWidth := cbWidth - (paddingsBorders + box.MarginLeft.V() + box.MarginRight.V())
				translateBoxWidth = true
				translateX = defaultTranslateX + availableWidth
			}
		} else if width == pr.AutoF && right == pr.AutoF {
			box.Width = shrinkToFit(context, box, cbWidth-spacing-left.V())
			translateX = left.V() + defaultTranslateX
		} else if left == pr.AutoF {
			translateX = cbWidth + defaultTranslateX - right.V() - spacing - width.V()
		} else if width == pr.AutoF {
			box.Width = cbWidth - right.V() - left.V() - spacing
			translateX = left.V() + defaultTranslateX
		} else if right == pr.AutoF {
			translateX = left.V() + defaultTranslateX
		}
	}
	return translateBoxWidth, translateX
}

func absoluteHeight(box *bo.Box, containingBlock block) (bool, pr.Float) {
	paddingsBorders := box.PaddingTop.V() + box.PaddingBottom.V() + box.BorderTopWidth.V() + box.BorderBottomWidth.V()

	marginT := box.MarginTop
	marginB := box.MarginBottom
	height := box.Height
	top := box.Top
	bottom := box.Bottom

	cbY, cbHeight := containingBlock.Y, containingBlock.Height

	// https://www.w3.org/TR/CSS2/visudet.html#abs-non-replaced-height

	var translateY pr.Float = 0
	translateBoxHeight := false
	defaultTranslateY := cbY - box.PositionY
	if top == pr.AutoF && bottom == pr.AutoF && height == pr.AutoF {
		// Keep the static position
		if marginT == pr.AutoF {
			box.MarginTop = pr.Float(0)
		}
		if marginB == pr.AutoF {
			box.MarginBottom = pr.Float(0)
		}
	} else if top != pr.AutoF && bottom != pr.AutoF && height != pr.AutoF {
		heightForMargins := cbHeight - (top.V() + bottom.V() + height.V() + paddingsBorders)
		if marginT == pr.AutoF && marginB == pr.AutoF {
			box.MarginTop = heightForMargins / 2
			box.MarginBottom = box.MarginTop
		} else if marginT == pr.AutoF {
			box.MarginTop = heightForMargins
		} else if marginB == pr.AutoF {
			box.MarginBottom = heightForMargins
		} else {
			// Over-constrained: ignore "bottom"
			box.MarginBottom = heightForMargins
		}
		translateY = top.V() + defaultTranslateY
	} else {
		if marginT == pr.AutoF {
			box.MarginTop = pr.Float(0)
		}
		if marginB == pr.AutoF {
			box.MarginBottom = pr.Float(0)
		}
		spacing := paddingsBorders + box.MarginTop.V() + box.MarginBottom.V()
		if top == pr.AutoF && height == pr.AutoF {
			translateY = cbHeight - bottom.V() - spacing + defaultTranslateY
			translateBoxHeight = true
		} else if top == pr.AutoF && bottom == pr.AutoF {
			// Keep the static position
		} else if height == pr.AutoF && bottom == pr.AutoF {
			translateY = top.V() + defaultTranslateY
		} else if top == pr.AutoF {
			translateY = cbHeight + defaultTranslateY - bottom.V() - spacing - height.V()
		} else if height == pr.AutoF {
			box.Height = cbHeight - bottom.V() - top.V() - spacing
			translateY = top.V() + defaultTranslateY
		} else if bottom == pr.AutoF {
			translateY = top.V() + defaultTranslateY
		}
	}
	return translateBoxHeight, translateY
}

// absoluteLayout lays out an absolutely positioned box against its
// containing block `cb` (the padding area of the closest positioned
// ancestor). The box's PositionX and PositionY hold its static
// position, used when the offsets leave it unconstrained.
func absoluteLayout(context *layoutContext, box *bo.Box, cb *bo.Box) {
	containingBlock := block{
		X:      cb.PaddingBoxX(),
		Y:      cb.PaddingBoxY(),
		Width:  cb.PaddingWidth(),
		Height: cb.PaddingHeight(),
	}

	resolvePercentages(box, bo.MaybePoint{containingBlock.Width, containingBlock.Height})
	resolvePositionPercentages(box, bo.Point{containingBlock.Width, containingBlock.Height})

	translateBoxWidth, translateX := absoluteWidth(context, box, containingBlock)
	translateBoxHeight, translateY := absoluteHeight(box, containingBlock)

	// This box is the containing block for its absolute descendants.
	var absoluteBoxes []*bo.Box
	var adjoiningMargins []pr.Float
	blockContainerLayout(context, box, &absoluteBoxes, &adjoiningMargins)

	for _, child := range absoluteBoxes {
		absoluteLayout(context, child, box)
	}

	if translateBoxWidth {
		translateX -= box.Width.V()
	}
	if translateBoxHeight {
		translateY -= box.Height.V()
	}
	box.Translate(translateX, translateY, false)
}

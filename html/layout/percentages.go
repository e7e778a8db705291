package layout

import (
	"fmt"

	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
)

// Resolve percentages into fixed values.

func resolveOnePercentage(value pr.DimOrS, propertyName pr.KnownProp, referTo pr.Float) pr.MaybeFloat {
	// box attributes are used values
	percent := pr.ResolvePercentage(value, referTo)
	if (propertyName == pr.PMinWidth || propertyName == pr.PMinHeight) && percent == pr.AutoF {
		percent = pr.Float(0)
	}
	return percent
}

func resolvePositionPercentages(box *bo.Box, containingBlock bo.Point) {
	cbWidth, cbHeight := containingBlock[0], containingBlock[1]
	box.Left = resolveOnePercentage(box.Style.GetLeft(), pr.PLeft, cbWidth)
	box.Right = resolveOnePercentage(box.Style.GetRight(), pr.PRight, cbWidth)
	box.Top = resolveOnePercentage(box.Style.GetTop(), pr.PTop, cbHeight)
	box.Bottom = resolveOnePercentage(box.Style.GetBottom(), pr.PBottom, cbHeight)
}

// resolvePercentages sets the used values of the box's margins,
// paddings, borders and dimensions, resolving percentages against
// the containing block. A percentage height against an auto-height
// containing block resolves to auto (the circular case).
func resolvePercentages(box *bo.Box, containingBlock bo.MaybePoint) {
	cbWidth, cbHeight := containingBlock[0], containingBlock[1]

	box.MarginLeft = resolveOnePercentage(box.Style.GetMarginLeft(), pr.PMarginLeft, cbWidth.V())
	box.MarginRight = resolveOnePercentage(box.Style.GetMarginRight(), pr.PMarginRight, cbWidth.V())
	box.MarginTop = resolveOnePercentage(box.Style.GetMarginTop(), pr.PMarginTop, cbWidth.V())
	box.MarginBottom = resolveOnePercentage(box.Style.GetMarginBottom(), pr.PMarginBottom, cbWidth.V())
	box.PaddingLeft = resolveOnePercentage(box.Style.GetPaddingLeft(), pr.PPaddingLeft, cbWidth.V())
	box.PaddingRight = resolveOnePercentage(box.Style.GetPaddingRight(), pr.PPaddingRight, cbWidth.V())
	box.PaddingTop = resolveOnePercentage(box.Style.GetPaddingTop(), pr.PPaddingTop, cbWidth.V())
	box.PaddingBottom = resolveOnePercentage(box.Style.GetPaddingBottom(), pr.PPaddingBottom, cbWidth.V())
	box.Width = resolveOnePercentage(box.Style.GetWidth(), pr.PWidth, cbWidth.V())
	box.MinWidth = resolveOnePercentage(box.Style.GetMinWidth(), pr.PMinWidth, cbWidth.V())
	box.MaxWidth = resolveOnePercentage(box.Style.GetMaxWidth(), pr.PMaxWidth, cbWidth.V())

	if cbHeight == pr.AutoF {
		// Special handling when the height of the containing block
		// depends on its content.
		height := box.Style.GetHeight()
		if height.S == "auto" || height.Unit == pr.Perc {
			box.Height = pr.AutoF
		} else {
			if height.Unit != pr.Px {
				panic(fmt.Sprintf("expected pixels, got %s", height.Unit))
			}
			box.Height = height.Value
		}
		box.MinHeight = resolveOnePercentage(box.Style.GetMinHeight(), pr.PMinHeight, 0)
		box.MaxHeight = resolveOnePercentage(box.Style.GetMaxHeight(), pr.PMaxHeight, pr.Inf)
	} else {
		box.Height = resolveOnePercentage(box.Style.GetHeight(), pr.PHeight, cbHeight.V())
		box.MinHeight = resolveOnePercentage(box.Style.GetMinHeight(), pr.PMinHeight, cbHeight.V())
		box.MaxHeight = resolveOnePercentage(box.Style.GetMaxHeight(), pr.PMaxHeight, cbHeight.V())
	}

	// Used value == computed value
	box.BorderTopWidth = box.Style.GetBorderTopWidth().Value
	box.BorderRightWidth = box.Style.GetBorderRightWidth().Value
	box.BorderBottomWidth = box.Style.GetBorderBottomWidth().Value
	box.BorderLeftWidth = box.Style.GetBorderLeftWidth().Value
}

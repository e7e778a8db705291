package layout

import (
	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
	"github.com/flowrender/flowrender/text"
)

// Preferred ("max-content") and preferred minimum ("min-content")
// widths, used for the shrink-to-fit sizing of floats and absolutely
// positioned boxes.
// https://www.w3.org/TR/CSS21/visudet.html#float-width

func shrinkToFit(context *layoutContext, box *bo.Box, availableWidth pr.Float) pr.Float {
	return pr.Min(pr.Max(minContentWidth(context, box), availableWidth), maxContentWidth(context, box))
}

// styleLength returns the pixel value of a computed length; auto and
// percentages do not contribute to preferred widths.
func styleLength(v pr.DimOrS) pr.Float {
	if v.S == "" && v.Unit == pr.Px {
		return v.Value
	}
	return 0
}

// adjustWidth clamps a candidate width to the min-width and max-width
// properties, when they are fixed lengths.
func adjustWidth(box *bo.Box, width pr.Float) pr.Float {
	if max := box.Style.GetMaxWidth(); max.S == "" && max.Unit == pr.Px {
		width = pr.Min(width, max.Value)
	}
	if min := box.Style.GetMinWidth(); min.S == "" && min.Unit == pr.Px {
		width = pr.Max(width, min.Value)
	}
	return width
}

func horizontalSurroundings(box *bo.Box) pr.Float {
	return styleLength(box.Style.GetMarginLeft()) + styleLength(box.Style.GetMarginRight()) +
		styleLength(box.Style.GetBorderLeftWidth()) + styleLength(box.Style.GetBorderRightWidth()) +
		styleLength(box.Style.GetPaddingLeft()) + styleLength(box.Style.GetPaddingRight())
}

// minContentWidth returns the narrowest the content box can be
// without overflowing.
func minContentWidth(context *layoutContext, box *bo.Box) pr.Float {
	if w := box.Style.GetWidth(); w.S == "" && w.Unit == pr.Px {
		return adjustWidth(box, w.Value)
	}
	var width pr.Float
	switch box.Kind {
	case bo.TextKind:
		width, _ = textContentWidths(context, box)
	case bo.InlineKind, bo.AnonymousInlineKind, bo.LineKind:
		for _, child := range box.Children {
			if child.IsAbsolutelyPositioned() {
				continue
			}
			width = pr.Max(width, outerMinContentWidth(context, child))
		}
	default:
		for _, child := range box.Children {
			if child.IsAbsolutelyPositioned() {
				continue
			}
			width = pr.Max(width, outerMinContentWidth(context, child))
		}
	}
	return adjustWidth(box, width)
}

// maxContentWidth returns the width the content box would take with
// no line breaking beyond forced breaks.
func maxContentWidth(context *layoutContext, box *bo.Box) pr.Float {
	if w := box.Style.GetWidth(); w.S == "" && w.Unit == pr.Px {
		return adjustWidth(box, w.Value)
	}
	var width pr.Float
	switch box.Kind {
	case bo.TextKind:
		_, width = textContentWidths(context, box)
	case bo.InlineKind, bo.AnonymousInlineKind, bo.LineKind:
		for _, child := range box.Children {
			if child.IsAbsolutelyPositioned() {
				continue
			}
			width += outerMaxContentWidth(context, child)
		}
	default:
		for _, child := range box.Children {
			if child.IsAbsolutelyPositioned() {
				continue
			}
			width = pr.Max(width, outerMaxContentWidth(context, child))
		}
	}
	return adjustWidth(box, width)
}

func outerMinContentWidth(context *layoutContext, box *bo.Box) pr.Float {
	return minContentWidth(context, box) + horizontalSurroundings(box)
}

func outerMaxContentWidth(context *layoutContext, box *bo.Box) pr.Float {
	return maxContentWidth(context, box) + horizontalSurroundings(box)
}

// textContentWidths measures a text box: the min-content width is the
// widest unbreakable chunk, the max-content width the widest forced
// line.
func textContentWidths(context *layoutContext, box *bo.Box) (minW, maxW pr.Float) {
	fontSize := text.Fl(box.Style.GetFontSize().Value)
	wordSpacing := text.Fl(box.Style.GetWordSpacing().Value)
	whiteSpace := box.Style.GetWhiteSpace()

	var lines [][]rune
	switch whiteSpace {
	case "pre", "pre-wrap", "pre-line":
		lines = splitForcedLines(box.Text)
	default:
		lines = [][]rune{box.Text}
	}
	softWrap := whiteSpace != "pre" && whiteSpace != "nowrap"

	for _, line := range lines {
		lineWidth := pr.Float(text.RunWidth(context.measurer, line, fontSize, wordSpacing))
		maxW = pr.Max(maxW, lineWidth)
		if !softWrap {
			minW = pr.Max(minW, lineWidth)
			continue
		}
		start := 0
		for _, end := range append(text.BreakOpportunities(line), len(line)) {
			chunk := line[start:end]
			if whiteSpace != "pre-wrap" {
				// a collapsible trailing space vanishes at the break
				for len(chunk) != 0 && chunk[len(chunk)-1] == ' ' {
					chunk = chunk[:len(chunk)-1]
				}
			}
			minW = pr.Max(minW, pr.Float(text.RunWidth(context.measurer, chunk, fontSize, wordSpacing)))
			start = end
		}
	}
	return minW, maxW
}

func splitForcedLines(runes []rune) [][]rune {
	var out [][]rune
	start := 0
	for i, r := range runes {
		if r == '\n' {
			out = append(out, runes[start:i])
			start = i + 1
		}
	}
	out = append(out, runes[start:])
	return out
}

package layout

import (
	pr "github.com/flowrender/flowrender/css/properties"
	bo "github.com/flowrender/flowrender/html/boxes"
	"github.com/flowrender/flowrender/text"
)

// Layout of inline formatting contexts: line breaking, bidi
// reordering and text positioning.
// See https://www.w3.org/TR/CSS21/visuren.html#inline-formatting

const objectReplacement = 0xFFFC // U+FFFC object replacement character

// inlineItem is one rune of the flattened inline stream. Bidi control
// characters pushed for unicode-bidi have no src and measure zero;
// out-of-flow boxes travel in the stream as object replacement
// characters.
type inlineItem struct {
	r         rune
	src       *bo.Box // text box providing the style, nil for controls
	outOfFlow *bo.Box
}

// flattenInline turns the content of a line box into a flat rune
// stream. Inline boxes with unicode-bidi embed or bidi-override wrap
// their content in the matching explicit bidi controls.
func flattenInline(box *bo.Box, items *[]inlineItem) {
	for _, child := range box.Children {
		if !child.IsInNormalFlow() {
			*items = append(*items, inlineItem{r: objectReplacement, outOfFlow: child})
			continue
		}
		switch child.Kind {
		case bo.TextKind:
			for _, r := range child.Text {
				*items = append(*items, inlineItem{r: r, src: child})
			}
		default:
			var open rune
			rtl := child.Style.GetDirection() == "rtl"
			switch child.Style.GetUnicodeBidi() {
			case "embed":
				open = 0x202A // LRE
				if rtl {
					open = 0x202B // RLE
				}
			case "bidi-override":
				open = 0x202D // LRO
				if rtl {
					open = 0x202E // RLO
				}
			}
			if open != 0 {
				*items = append(*items, inlineItem{r: open})
			}
			flattenInline(child, items)
			if open != 0 {
				*items = append(*items, inlineItem{r: 0x202C}) // PDF
			}
		}
	}
}

func (l *layoutContext) itemWidth(item inlineItem) pr.Float {
	if item.src == nil {
		return 0
	}
	fontSize := text.Fl(item.src.Style.GetFontSize().Value)
	width := pr.Float(l.measurer.AdvanceWidth(item.r, fontSize))
	if wordSpacing := item.src.Style.GetWordSpacing().Value; wordSpacing != 0 && text.IsJustifiableSpace(item.r) {
		width += wordSpacing
	}
	return width
}

// strutHeight returns the used line height for a style.
func strutHeight(style pr.ElementStyle) pr.Float {
	fontSize := style.GetFontSize().Value
	lineHeight := style.GetLineHeight()
	switch {
	case lineHeight.S == "normal":
		return 1.2 * fontSize
	case lineHeight.Unit == pr.Scalar:
		return lineHeight.Value * fontSize
	case lineHeight.Unit == pr.Px:
		return lineHeight.Value
	}
	return 1.2 * fontSize
}

// a space that disappears at a soft break or at the end of a line
func isCollapsibleSpace(item inlineItem) bool {
	if item.r != ' ' || item.src == nil {
		return false
	}
	switch item.src.Style.GetWhiteSpace() {
	case "pre", "pre-wrap":
		return false
	}
	return true
}

func allowsSoftWrap(item inlineItem) bool {
	if item.src == nil {
		return true
	}
	switch item.src.Style.GetWhiteSpace() {
	case "pre", "nowrap":
		return false
	}
	return true
}

// lineBounds returns the horizontal space left between the floats of
// the current formatting context for a line of the given height, and
// the floats narrowing it.
func lineBounds(context *layoutContext, containingBlock *bo.Box, positionY, height pr.Float) (
	left, right pr.Float, colliding []*bo.Box,
) {
	left = containingBlock.ContentBoxX()
	right = left + containingBlock.Width.V()
	for _, shape := range *context.excludedShapes {
		top, bottom := shape.PositionY, shape.PositionY+shape.MarginHeight()
		if (top < positionY && positionY < bottom) ||
			(top < positionY+height && positionY+height < bottom) ||
			(top >= positionY && bottom <= positionY+height) {
			colliding = append(colliding, shape)
			if shape.Style.GetFloat() == "left" {
				left = pr.Max(left, shape.PositionX+shape.MarginWidth())
			} else {
				right = pr.Min(right, shape.PositionX)
			}
		}
	}
	return left, right, colliding
}

// lineBoxLayout breaks the content of `box` (a line box before
// layout) into laid out lines stacked from positionY, between the
// float edges. It returns the lines and the y position under the last
// one.
func lineBoxLayout(context *layoutContext, box *bo.Box, containingBlock *bo.Box,
	positionY pr.Float, absoluteBoxes *[]*bo.Box,
) ([]*bo.Box, pr.Float) {
	var items []inlineItem
	flattenInline(box, &items)

	paragraphs := splitItemParagraphs(items)
	if len(paragraphs) == 1 && len(paragraphs[0]) == 0 {
		return nil, positionY
	}

	baseRTL := box.Style.GetDirection() == "rtl"
	forced := len(paragraphs) > 1
	var lines []*bo.Box
	for _, paragraph := range paragraphs {
		lines, positionY = layoutParagraph(context, box, containingBlock, paragraph,
			baseRTL, forced, positionY, absoluteBoxes, lines)
	}
	return lines, positionY
}

// splitItemParagraphs splits the stream at bidi paragraph separators,
// which only survive whitespace processing under the pre family.
func splitItemParagraphs(items []inlineItem) [][]inlineItem {
	var out [][]inlineItem
	start := 0
	for i := 0; i < len(items); i++ {
		if items[i].src == nil || !text.IsParagraphSeparator(items[i].r) {
			continue
		}
		out = append(out, items[start:i])
		if items[i].r == '\r' && i+1 < len(items) && items[i+1].r == '\n' && items[i+1].src != nil {
			i++
		}
		start = i + 1
	}
	if start < len(items) {
		out = append(out, items[start:])
	} else if len(items) == 0 {
		out = append(out, items)
	}
	return out
}

func layoutParagraph(context *layoutContext, box, containingBlock *bo.Box, paragraph []inlineItem,
	baseRTL, forced bool, positionY pr.Float, absoluteBoxes *[]*bo.Box, lines []*bo.Box,
) ([]*bo.Box, pr.Float) {
	strut := strutHeight(box.Style)

	if len(paragraph) == 0 {
		// a forced break with nothing on the line still takes a line
		left, _, _ := lineBounds(context, containingBlock, positionY, strut)
		lines = append(lines, makeLine(box, nil, left, positionY, 0, strut))
		return lines, positionY + strut
	}

	// chunk boundaries: the allowed soft wrap opportunities
	runes := make([]rune, len(paragraph))
	for i, item := range paragraph {
		runes[i] = item.r
	}
	var boundaries []int
	for _, offset := range text.BreakOpportunities(runes) {
		if allowsSoftWrap(paragraph[offset-1]) {
			boundaries = append(boundaries, offset)
		}
	}
	boundaries = append(boundaries, len(paragraph))

	chunkStart := 0
	next := 0 // index in boundaries of the next chunk end
	emitted := false
	for next < len(boundaries) {
		// spaces at the start of a line collapse away
		for chunkStart < len(paragraph) && isCollapsibleSpace(paragraph[chunkStart]) {
			chunkStart++
		}
		for next < len(boundaries) && boundaries[next] <= chunkStart {
			next++
		}
		if next == len(boundaries) {
			break
		}

		lineTop := positionY
		var left, right pr.Float

		// first chunk of the line: move below the floats if it does
		// not fit beside them
		firstEnd := boundaries[next]
		firstWidth := itemsWidth(context, trimTrailing(paragraph[chunkStart:firstEnd]))
		for {
			var colliding []*bo.Box
			left, right, colliding = lineBounds(context, containingBlock, lineTop, strut)
			if firstWidth <= right-left || len(colliding) == 0 {
				break
			}
			newTop := pr.Inf
			for _, shape := range colliding {
				newTop = pr.Min(newTop, shape.PositionY+shape.MarginHeight())
			}
			if newTop <= lineTop {
				break
			}
			lineTop = newTop
		}

		// greedy filling
		lineStart := chunkStart
		var lineWidth pr.Float
		for next < len(boundaries) {
			end := boundaries[next]
			chunk := paragraph[chunkStart:end]
			fitWidth := itemsWidth(context, trimTrailing(chunk))
			if lineStart != chunkStart && lineWidth+fitWidth > right-left {
				break
			}
			lineWidth += itemsWidth(context, chunk)
			chunkStart = end
			next++
		}

		lineItems := trimTrailing(paragraph[lineStart:chunkStart])
		lineWidth = itemsWidth(context, lineItems)

		lineHeight := strut
		for _, item := range lineItems {
			if item.src != nil {
				lineHeight = pr.Max(lineHeight, strutHeight(item.src.Style))
			}
		}

		startX := left
		if baseRTL {
			startX = right - lineWidth
		}

		children := emitLine(context, containingBlock, lineItems, baseRTL, startX, lineTop, absoluteBoxes)
		lines = append(lines, makeLine(box, children, startX, lineTop, lineWidth, lineHeight))
		positionY = lineTop + lineHeight
		emitted = true
	}
	if !emitted && forced {
		// the paragraph content collapsed away entirely, its forced
		// break still yields a line
		left, _, _ := lineBounds(context, containingBlock, positionY, strut)
		lines = append(lines, makeLine(box, nil, left, positionY, 0, strut))
		positionY += strut
	}
	return lines, positionY
}

func itemsWidth(context *layoutContext, items []inlineItem) pr.Float {
	var width pr.Float
	for _, item := range items {
		width += context.itemWidth(item)
	}
	return width
}

func trimTrailing(items []inlineItem) []inlineItem {
	end := len(items)
	for end > 0 && isCollapsibleSpace(items[end-1]) {
		end--
	}
	return items[:end]
}

// emitLine reorders the line visually and produces its text
// fragments, laying out the out-of-flow boxes met on the way.
func emitLine(context *layoutContext, containingBlock *bo.Box, items []inlineItem,
	baseRTL bool, startX, lineTop pr.Float, absoluteBoxes *[]*bo.Box,
) []*bo.Box {
	runes := make([]rune, len(items))
	for i, item := range items {
		runes[i] = item.r
	}

	var children []*bo.Box
	pen := startX
	flush := func(src *bo.Box, frag []rune, width pr.Float) {
		if src == nil || len(frag) == 0 {
			return
		}
		fragment := bo.NewTextBox(src.Style, src.Element, frag)
		initBoxGeometry(fragment)
		fragment.PositionX = pen - width
		fragment.PositionY = lineTop
		fragment.Width = width
		fragment.Height = src.Style.GetFontSize().Value
		children = append(children, fragment)
	}

	for _, run := range text.VisualRuns(runes, baseRTL) {
		var (
			src       *bo.Box
			frag      []rune
			fragWidth pr.Float
		)
		emit := func(i int) {
			item := items[i]
			if item.outOfFlow != nil {
				flush(src, frag, fragWidth)
				src, frag, fragWidth = nil, nil, 0
				layoutLineOutOfFlow(context, item.outOfFlow, containingBlock, pen, lineTop, absoluteBoxes)
				children = append(children, item.outOfFlow)
				return
			}
			if item.src != src {
				flush(src, frag, fragWidth)
				src, frag, fragWidth = item.src, nil, 0
			}
			if item.src != nil {
				frag = append(frag, item.r)
				w := context.itemWidth(item)
				fragWidth += w
				pen += w
			}
		}
		if run.RTL {
			for i := run.End - 1; i >= run.Start; i-- {
				emit(i)
			}
		} else {
			for i := run.Start; i < run.End; i++ {
				emit(i)
			}
		}
		flush(src, frag, fragWidth)
	}
	return children
}

func layoutLineOutOfFlow(context *layoutContext, box *bo.Box, containingBlock *bo.Box,
	penX, lineTop pr.Float, absoluteBoxes *[]*bo.Box,
) {
	box.PositionX = penX
	box.PositionY = lineTop
	if box.IsAbsolutelyPositioned() {
		if box.Style.GetPosition() == "fixed" {
			context.fixedBoxes = append(context.fixedBoxes, box)
		} else {
			*absoluteBoxes = append(*absoluteBoxes, box)
		}
	} else if box.IsFloated() {
		floatLayout(context, box, containingBlock, absoluteBoxes)
	}
}

func makeLine(source *bo.Box, children []*bo.Box, positionX, positionY, width, height pr.Float) *bo.Box {
	line := &bo.Box{Kind: bo.LineKind, Style: source.Style, Children: children}
	initBoxGeometry(line)
	line.PositionX = positionX
	line.PositionY = positionY
	line.Width = width
	line.Height = height
	return line
}

package boxes

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/flowrender/flowrender/html/tree"
)

// Turn the styled element tree into a box tree: generate boxes per
// the display property, then normalize the tree so that
//   - a block container has either only block-level children or a
//     single LineBox child holding all its inline content,
//   - an inline box never contains a block-level box,
//   - no two anonymous boxes of the same kind are adjacent.
// See https://www.w3.org/TR/CSS21/visuren.html#box-gen

// BuildFormattingStructure builds the box tree for the document.
// Returns nil if the root element generates no box.
func BuildFormattingStructure(doc *tree.HTML, styleFor *tree.StyleFor) *Box {
	root := elementToBox(doc.Root, styleFor)
	if root == nil {
		return nil
	}
	root.IsForRootElement = true
	// the root box is always block-level
	if !root.IsBlockLevel() {
		root.Kind = BlockKind
	}
	processWhitespace(root, false)
	root = inlineInBlock(root)
	root = blockInInline(root)
	return root
}

func elementToBox(element *html.Node, styleFor *tree.StyleFor) *Box {
	style := styleFor.Get(element)
	if style == nil || style.GetDisplay() == "none" {
		return nil
	}

	var children []*Box
	for child := element.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if child.Data != "" {
				children = append(children, NewTextBox(tree.AnonymousStyle(style), element, []rune(child.Data)))
			}
		case html.ElementNode:
			if box := elementToBox(child, styleFor); box != nil {
				children = append(children, box)
			}
		}
	}

	kind := InlineKind
	// floating or absolute positioning blockifies an inline element
	// http://www.w3.org/TR/CSS21/visuren.html#dis-pos-flo
	if style.GetDisplay() == "block" || style.GetFloat() != "none" ||
		style.GetPosition() == "absolute" || style.GetPosition() == "fixed" {
		kind = BlockKind
	}
	return newBox(kind, style, element, children)
}

// processWhitespace applies the white-space property to text boxes:
// collapsing modes fold whitespace runs into a single space,
// pre-line keeps the newlines.
// http://www.w3.org/TR/CSS21/text.html#white-space-model
func processWhitespace(box *Box, followingCollapsibleSpace bool) bool {
	if box.Kind == TextKind {
		text := string(box.Text)
		handling := string(box.Style.GetWhiteSpace())
		switch handling {
		case "normal", "nowrap", "pre-line":
			text = strings.ReplaceAll(text, "\t", " ")
			text = strings.ReplaceAll(text, "\r\n", "\n")
			text = strings.ReplaceAll(text, "\r", "\n")
			if handling != "pre-line" {
				text = strings.ReplaceAll(text, "\n", " ")
			}
			for strings.Contains(text, "  ") {
				text = strings.ReplaceAll(text, "  ", " ")
			}
			if followingCollapsibleSpace && strings.HasPrefix(text, " ") {
				text = text[1:]
			}
			followingCollapsibleSpace = strings.HasSuffix(text, " ")
		default: // pre, pre-wrap: preserved
			followingCollapsibleSpace = false
		}
		box.Text = []rune(text)
		return followingCollapsibleSpace
	}
	for _, child := range box.Children {
		if child.IsBlockLevel() {
			followingCollapsibleSpace = false
		}
		followingCollapsibleSpace = processWhitespace(child, followingCollapsibleSpace)
	}
	return followingCollapsibleSpace
}

// isWhitespaceOnly returns true for a collapsible text box reduced
// to spaces, droppable between block-level siblings.
func isWhitespaceOnly(box *Box) bool {
	if box.Kind != TextKind {
		return false
	}
	switch box.Style.GetWhiteSpace() {
	case "pre", "pre-wrap":
		return false
	}
	return strings.TrimSpace(string(box.Text)) == ""
}

// inlineInBlock wraps the inline content of block containers into
// line boxes.
func inlineInBlock(box *Box) *Box {
	if box.Kind == TextKind {
		return box
	}
	children := make([]*Box, 0, len(box.Children))
	for _, child := range box.Children {
		children = append(children, inlineInBlock(child))
	}
	box.Children = children

	if !box.IsBlockLevel() && box.Kind != LineKind {
		return box
	}

	hasBlock := false
	hasInline := false
	for _, child := range box.Children {
		if child.IsBlockLevel() && child.IsInNormalFlow() {
			hasBlock = true
		} else if child.IsInlineLevel() && child.IsInNormalFlow() && !isWhitespaceOnly(child) {
			hasInline = true
		}
	}

	var newChildren []*Box
	var inlineGroup []*Box
	flushInline := func() {
		if len(inlineGroup) == 0 {
			return
		}
		line := AnonymousFrom(box, LineKind, inlineGroup)
		inlineGroup = nil
		if hasBlock {
			newChildren = append(newChildren, AnonymousFrom(box, AnonymousBlockKind, []*Box{line}))
		} else {
			newChildren = append(newChildren, line)
		}
	}
	for _, child := range box.Children {
		switch {
		case child.IsInlineLevel() && child.IsInNormalFlow():
			if isWhitespaceOnly(child) && (hasBlock || !hasInline) {
				continue // whitespace between block boxes
			}
			inlineGroup = append(inlineGroup, child)
		case !child.IsInNormalFlow() && hasInline:
			// an out-of-flow box amid inline content stays in the line
			inlineGroup = append(inlineGroup, child)
		default:
			flushInline()
			newChildren = append(newChildren, child)
		}
	}
	flushInline()
	box.Children = newChildren
	return box
}

// containsBlock reports whether an inline-level subtree holds a
// block-level box.
func containsBlock(box *Box) bool {
	for _, child := range box.Children {
		if child.IsBlockLevel() && child.IsInNormalFlow() {
			return true
		}
		if containsBlock(child) {
			return true
		}
	}
	return false
}

// cutInline splits an inline box around its block-level descendants:
// block-level boxes are hoisted to the top level of the returned
// sequence, between copies of the inline box wrapping the remaining
// inline content.
func cutInline(box *Box) []*Box {
	if box.Kind == TextKind || !containsBlock(box) {
		return []*Box{box}
	}
	var (
		out     []*Box
		current []*Box
	)
	flush := func() {
		if len(current) != 0 {
			out = append(out, box.CopyWithChildren(current))
			current = nil
		}
	}
	for _, child := range box.Children {
		if child.IsBlockLevel() && child.IsInNormalFlow() {
			flush()
			out = append(out, child)
			continue
		}
		for _, piece := range cutInline(child) {
			if piece.IsBlockLevel() {
				flush()
				out = append(out, piece)
			} else {
				current = append(current, piece)
			}
		}
	}
	flush()
	return out
}

// blockInInline hoists block-level boxes out of inline boxes,
// breaking the enclosing line into anonymous blocks.
func blockInInline(box *Box) *Box {
	if box.Kind == TextKind {
		return box
	}
	for i, child := range box.Children {
		box.Children[i] = blockInInline(child)
	}
	if !box.IsBlockLevel() {
		return box
	}

	var newChildren []*Box
	changed := false
	for _, child := range box.Children {
		line := child
		if child.Kind == AnonymousBlockKind && len(child.Children) == 1 && child.Children[0].Kind == LineKind {
			line = child.Children[0]
		}
		if line.Kind != LineKind || !containsBlock(line) {
			newChildren = append(newChildren, child)
			continue
		}
		changed = true
		var inlineRun []*Box
		flushRun := func() {
			if len(inlineRun) == 0 {
				return
			}
			newLine := AnonymousFrom(box, LineKind, inlineRun)
			inlineRun = nil
			newChildren = append(newChildren, AnonymousFrom(box, AnonymousBlockKind, []*Box{newLine}))
		}
		for _, piece := range cutInline(line.CopyWithChildren(line.Children)) {
			if piece.Kind == LineKind {
				inlineRun = append(inlineRun, piece.Children...)
			} else if piece.IsBlockLevel() {
				flushRun()
				newChildren = append(newChildren, piece)
			} else {
				inlineRun = append(inlineRun, piece)
			}
		}
		flushRun()
	}
	if changed {
		box.Children = newChildren
	}
	return box
}

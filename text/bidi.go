package text

import (
	"golang.org/x/text/unicode/bidi"
)

// IsParagraphSeparator returns true for the characters of bidi class
// B, which force a paragraph break before bidi resolution.
// Note that U+2028 LINE SEPARATOR is not one of them.
func IsParagraphSeparator(r rune) bool {
	switch r {
	case 0x0A, 0x0D, 0x1C, 0x1D, 0x1E, 0x85, 0x2029:
		return true
	}
	return false
}

// SplitParagraphs splits the text at paragraph separators. The
// separators are not included in the output; an empty paragraph
// between two separators is kept, so that it still yields a line.
// A final separator does not produce a trailing empty paragraph.
// CRLF counts as one separator.
func SplitParagraphs(text []rune) [][]rune {
	var out [][]rune
	start := 0
	for i := 0; i < len(text); i++ {
		if !IsParagraphSeparator(text[i]) {
			continue
		}
		out = append(out, text[start:i])
		if text[i] == 0x0D && i+1 < len(text) && text[i+1] == 0x0A {
			i++
		}
		start = i + 1
	}
	if start < len(text) {
		out = append(out, text[start:])
	} else if len(text) == 0 {
		out = append(out, text)
	}
	return out
}

// Run is a maximal sequence of characters sharing one resolved bidi
// direction, in visual order.
type Run struct {
	Start, End int // rune offsets in the paragraph, End exclusive
	RTL        bool
}

// VisualRuns resolves the bidi runs of one paragraph and returns them
// in visual order, left to right. The paragraph embedding level
// defaults to the given base direction when the text has no strong
// character.
func VisualRuns(paragraph []rune, baseRTL bool) []Run {
	if len(paragraph) == 0 {
		return nil
	}

	base := bidi.LeftToRight
	if baseRTL {
		base = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(string(paragraph), bidi.DefaultDirection(base)); err != nil {
		return []Run{{Start: 0, End: len(paragraph), RTL: baseRTL}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Start: 0, End: len(paragraph), RTL: baseRTL}}
	}

	out := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // rune offsets, end inclusive
		out = append(out, Run{
			Start: start,
			End:   end + 1,
			RTL:   run.Direction() == bidi.RightToLeft,
		})
	}
	return out
}

// OverrideRuns returns a single run covering the paragraph, for
// unicode-bidi: bidi-override.
func OverrideRuns(paragraph []rune, rtl bool) []Run {
	if len(paragraph) == 0 {
		return nil
	}
	return []Run{{Start: 0, End: len(paragraph), RTL: rtl}}
}

package text

import "github.com/go-text/typesetting/segmenter"

// BreakOpportunities returns the rune offsets at which a line may be
// broken, per the Unicode line breaking algorithm. The offsets are
// increasing; the end of the text is not reported.
func BreakOpportunities(text []rune) []int {
	if len(text) < 2 {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	var out []int
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		if end := line.Offset + len(line.Text); end < len(text) {
			out = append(out, end)
		}
	}
	return out
}

// CanBreak returns true if the text contains at least one line break
// opportunity.
func CanBreak(text []rune) bool {
	return len(BreakOpportunities(text)) != 0
}

package text

import "github.com/flowrender/flowrender/utils"

type Fl = utils.Fl

// Measurer provides glyph advances. Layout only ever needs horizontal
// advances and the line height, so shaping details stay behind this
// interface.
type Measurer interface {
	// AdvanceWidth returns the advance of the glyph for r, for the
	// given font size in pixels.
	AdvanceWidth(r rune, fontSize Fl) Fl
}

// AhemMeasurer measures like the Ahem test font: every glyph is one
// em wide. It makes layout results exactly predictable, which the
// tests rely on.
type AhemMeasurer struct{}

func (AhemMeasurer) AdvanceWidth(_ rune, fontSize Fl) Fl { return fontSize }

// RunWidth measures a run of text, applying word spacing to each
// justifiable space. Fixed width spaces keep their font advance.
func RunWidth(m Measurer, run []rune, fontSize, wordSpacing Fl) Fl {
	var width Fl
	for _, r := range run {
		width += m.AdvanceWidth(r, fontSize)
		if wordSpacing != 0 && IsJustifiableSpace(r) {
			width += wordSpacing
		}
	}
	return width
}

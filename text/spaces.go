// Package text implements the inline text pipeline: paragraph
// splitting, bidi resolution, line break opportunities and run
// measurement.
package text

// IsFixedWidthSpace returns true for space characters whose advance
// is fixed by the Unicode standard. Word spacing must not stretch
// them.
// See https://www.w3.org/TR/css-text-3/#word-separator
func IsFixedWidthSpace(r rune) bool {
	switch {
	case r >= 0x2000 && r <= 0x200A: // en quad .. hair space
		return true
	case r == 0x202F: // narrow no-break space
		return true
	case r == 0x205F: // medium mathematical space
		return true
	case r == 0x3000: // ideographic space
		return true
	}
	return false
}

// IsJustifiableSpace returns true for the spaces eligible for word
// spacing adjustment.
func IsJustifiableSpace(r rune) bool { return r == 0x20 }

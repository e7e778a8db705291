package parser

import (
	"fmt"
	"strings"
)

// Serialize returns a CSS representation of the tokens, used in
// warning messages.
func Serialize(tokens []Token) string {
	var sb strings.Builder
	for _, token := range tokens {
		switch token := token.(type) {
		case Ident:
			sb.WriteString(token.Value)
		case Number:
			fmt.Fprintf(&sb, "%g", token.ValueF)
		case Dimension:
			fmt.Fprintf(&sb, "%g%s", token.ValueF, token.Unit)
		case Percentage:
			fmt.Fprintf(&sb, "%g%%", token.ValueF)
		case Hash:
			sb.WriteByte('#')
			sb.WriteString(token.Value)
		case Literal:
			sb.WriteString(token.Value)
		case Whitespace:
			sb.WriteByte(' ')
		case ParseError:
			fmt.Fprintf(&sb, "<error: %s>", token.Message)
		}
	}
	return sb.String()
}

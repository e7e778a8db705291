// Package parser implements a CSS tokenizer and a parser for
// declaration lists and stylesheet rules.
//
// It covers the subset of the CSS syntax needed by the layout engine:
// identifiers, numbers, dimensions, percentages, hashes and punctuation.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos stores the position of a token in the input, for error reporting.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Token is a lexical unit of the CSS input.
type Token interface {
	Pos() Pos
	Kind() string
}

type (
	// Ident is an identifier, like "auto" or "margin-left".
	Ident struct {
		Value string
		pos   Pos
	}

	// Number is a unitless numeric value.
	Number struct {
		ValueF Fl
		pos    Pos
	}

	// Dimension is a number followed by a unit, like "12px".
	Dimension struct {
		Unit   string
		ValueF Fl
		pos    Pos
	}

	// Percentage is a number followed by "%".
	Percentage struct {
		ValueF Fl
		pos    Pos
	}

	// Hash is a "#" followed by an identifier, used in ID selectors.
	Hash struct {
		Value string
		pos   Pos
	}

	// Literal is a single punctuation character, like ":" or "{".
	Literal struct {
		Value string
		pos   Pos
	}

	// Whitespace is a run of spaces, tabs and newlines.
	Whitespace struct {
		pos Pos
	}

	// ParseError is emitted for input the tokenizer cannot handle.
	ParseError struct {
		Message string
		pos     Pos
	}
)

type Fl = float32

func (t Ident) Pos() Pos      { return t.pos }
func (t Number) Pos() Pos     { return t.pos }
func (t Dimension) Pos() Pos  { return t.pos }
func (t Percentage) Pos() Pos { return t.pos }
func (t Hash) Pos() Pos       { return t.pos }
func (t Literal) Pos() Pos    { return t.pos }
func (t Whitespace) Pos() Pos { return t.pos }
func (t ParseError) Pos() Pos { return t.pos }

func (Ident) Kind() string      { return "ident" }
func (Number) Kind() string     { return "number" }
func (Dimension) Kind() string  { return "dimension" }
func (Percentage) Kind() string { return "percentage" }
func (Hash) Kind() string       { return "hash" }
func (t Literal) Kind() string  { return "literal " + t.Value }
func (Whitespace) Kind() string { return "whitespace" }
func (ParseError) Kind() string { return "error" }

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c >= 0x80
}

func isName(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(css string, pos int) bool {
	c := css[pos]
	if isNameStart(c) {
		return true
	}
	if c == '-' && pos+1 < len(css) {
		n := css[pos+1]
		return isNameStart(n) || n == '-'
	}
	return false
}

func isNumberStart(css string, pos int) bool {
	c := css[pos]
	if isDigit(c) {
		return true
	}
	if (c == '+' || c == '-') && pos+1 < len(css) {
		n := css[pos+1]
		return isDigit(n) || (n == '.' && pos+2 < len(css) && isDigit(css[pos+2]))
	}
	return c == '.' && pos+1 < len(css) && isDigit(css[pos+1])
}

func consumeName(css string, pos int) (string, int) {
	start := pos
	for pos < len(css) && isName(css[pos]) {
		pos++
	}
	return css[start:pos], pos
}

func consumeNumber(css string, pos int) (Fl, int) {
	start := pos
	if css[pos] == '+' || css[pos] == '-' {
		pos++
	}
	for pos < len(css) && isDigit(css[pos]) {
		pos++
	}
	if pos < len(css) && css[pos] == '.' {
		pos++
		for pos < len(css) && isDigit(css[pos]) {
			pos++
		}
	}
	if pos < len(css) && (css[pos] == 'e' || css[pos] == 'E') {
		mark := pos
		pos++
		if pos < len(css) && (css[pos] == '+' || css[pos] == '-') {
			pos++
		}
		if pos < len(css) && isDigit(css[pos]) {
			for pos < len(css) && isDigit(css[pos]) {
				pos++
			}
		} else {
			pos = mark
		}
	}
	v, _ := strconv.ParseFloat(css[start:pos], 32)
	return Fl(v), pos
}

// Tokenize splits the input into a flat list of tokens.
// CSS comments are skipped; unterminated comments run to the end
// of the input, as required by the CSS error handling rules.
func Tokenize(css string) []Token {
	css = strings.ReplaceAll(css, "\r\n", "\n")
	css = strings.ReplaceAll(css, "\r", "\n")
	css = strings.ReplaceAll(css, "\f", "\n")

	var out []Token
	line, lastNewline := 1, -1
	for pos := 0; pos < len(css); {
		tokenPos := Pos{Line: line, Column: pos - lastNewline}
		c := css[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			for pos < len(css) && (css[pos] == ' ' || css[pos] == '\t' || css[pos] == '\n') {
				if css[pos] == '\n' {
					line++
					lastNewline = pos
				}
				pos++
			}
			out = append(out, Whitespace{pos: tokenPos})
		case c == '/' && pos+1 < len(css) && css[pos+1] == '*':
			end := strings.Index(css[pos+2:], "*/")
			if end == -1 {
				pos = len(css)
			} else {
				inner := css[pos+2 : pos+2+end]
				line += strings.Count(inner, "\n")
				if nl := strings.LastIndexByte(inner, '\n'); nl != -1 {
					lastNewline = pos + 2 + nl
				}
				pos += end + 4
			}
		case isNumberStart(css, pos):
			var value Fl
			value, pos = consumeNumber(css, pos)
			switch {
			case pos < len(css) && css[pos] == '%':
				pos++
				out = append(out, Percentage{ValueF: value, pos: tokenPos})
			case pos < len(css) && isIdentStart(css, pos):
				var unit string
				unit, pos = consumeName(css, pos)
				out = append(out, Dimension{ValueF: value, Unit: strings.ToLower(unit), pos: tokenPos})
			default:
				out = append(out, Number{ValueF: value, pos: tokenPos})
			}
		case isIdentStart(css, pos):
			var name string
			name, pos = consumeName(css, pos)
			out = append(out, Ident{Value: name, pos: tokenPos})
		case c == '#' && pos+1 < len(css) && isName(css[pos+1]):
			var name string
			name, pos = consumeName(css, pos+1)
			out = append(out, Hash{Value: name, pos: tokenPos})
		case strings.IndexByte("{}:;,.*>+~[]()", c) != -1:
			out = append(out, Literal{Value: string(c), pos: tokenPos})
			pos++
		default:
			out = append(out, ParseError{
				Message: fmt.Sprintf("unexpected character %q", c),
				pos:     tokenPos,
			})
			pos++
		}
	}
	return out
}

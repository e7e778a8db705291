package parser

import (
	"testing"

	tu "github.com/flowrender/flowrender/utils/testutils"
)

func kindsOf(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind()
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tokens := Tokenize("div { width: 12px }")
	tu.AssertEqual(t, kindsOf(tokens), []string{
		"ident", "whitespace", "literal {", "whitespace",
		"ident", "literal :", "whitespace", "dimension",
		"whitespace", "literal }",
	})
}

func TestTokenizeValues(t *testing.T) {
	tokens := Tokenize("margin-left 12px 50% #nav 0 -5px .5 1e2")
	tu.AssertEqual(t, tokens[0].(Ident).Value, "margin-left")

	dim := tokens[2].(Dimension)
	tu.AssertEqual(t, dim.ValueF, Fl(12))
	tu.AssertEqual(t, dim.Unit, "px")

	tu.AssertEqual(t, tokens[4].(Percentage).ValueF, Fl(50))
	tu.AssertEqual(t, tokens[6].(Hash).Value, "nav")
	tu.AssertEqual(t, tokens[8].(Number).ValueF, Fl(0))

	neg := tokens[10].(Dimension)
	tu.AssertEqual(t, neg.ValueF, Fl(-5))
	tu.AssertEqual(t, neg.Unit, "px")

	tu.AssertEqual(t, tokens[12].(Number).ValueF, Fl(0.5))
	tu.AssertEqual(t, tokens[14].(Number).ValueF, Fl(100))
}

func TestTokenizeUnitCase(t *testing.T) {
	tokens := Tokenize("10PX")
	tu.AssertEqual(t, tokens[0].(Dimension).Unit, "px")
}

func TestTokenizeComments(t *testing.T) {
	tokens := Tokenize("a/* comment */b")
	tu.AssertEqual(t, kindsOf(tokens), []string{"ident", "ident"})

	// an unterminated comment runs to the end of the input
	tokens = Tokenize("a/*b")
	tu.AssertEqual(t, kindsOf(tokens), []string{"ident"})
}

func TestTokenizeBadCharacter(t *testing.T) {
	tokens := Tokenize("a @ b")
	tu.AssertEqual(t, kindsOf(tokens), []string{
		"ident", "whitespace", "error", "whitespace", "ident",
	})
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("ab cd\nef")
	tu.AssertEqual(t, tokens[0].Pos(), Pos{Line: 1, Column: 1})
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 1, Column: 4})
	tu.AssertEqual(t, tokens[4].Pos(), Pos{Line: 2, Column: 1})

	// \r\n and \r count as a single newline
	tokens = Tokenize("ab\r\ncd")
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 2, Column: 1})
}

func TestParseDeclarationList(t *testing.T) {
	decls, errs := ParseDeclarationList("width: 10px; height: auto")
	tu.AssertEqual(t, len(errs), 0)
	tu.AssertEqual(t, len(decls), 2)

	tu.AssertEqual(t, decls[0].Name, "width")
	tu.AssertEqual(t, len(decls[0].Value), 1)
	tu.AssertEqual(t, decls[0].Value[0].(Dimension).ValueF, Fl(10))

	tu.AssertEqual(t, decls[1].Name, "height")
	tu.AssertEqual(t, decls[1].Value[0].(Ident).Value, "auto")
}

func TestParseDeclarationTrimsWhitespace(t *testing.T) {
	decls, errs := ParseDeclarationList("margin: 0 auto  ;")
	tu.AssertEqual(t, len(errs), 0)
	tu.AssertEqual(t, len(decls), 1)

	// leading whitespace after ":" is kept, trailing is trimmed
	value := decls[0].Value
	_, isWs := value[len(value)-1].(Whitespace)
	tu.AssertEqual(t, isWs, false)
	tu.AssertEqual(t, value[len(value)-1].(Ident).Value, "auto")
}

func TestParseDeclarationEmptyValue(t *testing.T) {
	decls, errs := ParseDeclarationList("width: ; height: 10px")
	tu.AssertEqual(t, len(errs), 1)
	tu.AssertEqual(t, len(decls), 1)
	tu.AssertEqual(t, decls[0].Name, "height")
}

func TestParseDeclarationResync(t *testing.T) {
	// a malformed declaration is dropped up to the next ";"
	decls, errs := ParseDeclarationList("4: garbage here; width: 10px")
	tu.AssertEqual(t, len(errs), 1)
	tu.AssertEqual(t, len(decls), 1)
	tu.AssertEqual(t, decls[0].Name, "width")

	decls, errs = ParseDeclarationList("width 10px; height: 20px")
	tu.AssertEqual(t, len(errs), 1)
	tu.AssertEqual(t, len(decls), 1)
	tu.AssertEqual(t, decls[0].Name, "height")
}

func TestParseDeclarationStraySemicolons(t *testing.T) {
	decls, errs := ParseDeclarationList("; ; width: 10px ; ;")
	tu.AssertEqual(t, len(errs), 0)
	tu.AssertEqual(t, len(decls), 1)
}

func TestParseStylesheet(t *testing.T) {
	rules := ParseStylesheet("div { width: 10px } .c { height: 20px }")
	tu.AssertEqual(t, len(rules), 2)

	tu.AssertEqual(t, rules[0].Prelude[0].(Ident).Value, "div")
	decls, errs := ParseDeclarationTokens(rules[0].Content)
	tu.AssertEqual(t, len(errs), 0)
	tu.AssertEqual(t, len(decls), 1)
	tu.AssertEqual(t, decls[0].Name, "width")

	tu.AssertEqual(t, rules[1].Prelude[1].(Ident).Value, "c")
	tu.AssertEqual(t, rules[1].Pos(), Pos{Line: 1, Column: 21})
}

func TestParseStylesheetSkipsAtRules(t *testing.T) {
	rules := ParseStylesheet("@media print { div { width: 10px } } p { width: 20px }")
	tu.AssertEqual(t, len(rules), 1)
	tu.AssertEqual(t, rules[0].Prelude[0].(Ident).Value, "p")
}

func TestParseStylesheetUnclosedBlock(t *testing.T) {
	rules := ParseStylesheet("div { width: 10px ")
	tu.AssertEqual(t, len(rules), 0)
}

func TestParseStylesheetEmptyPrelude(t *testing.T) {
	rules := ParseStylesheet("{ width: 10px } p { width: 20px }")
	tu.AssertEqual(t, len(rules), 1)
	tu.AssertEqual(t, rules[0].Prelude[0].(Ident).Value, "p")
}

func TestParseStylesheetNestedBraces(t *testing.T) {
	// inner braces belong to the block, the next rule still parses
	rules := ParseStylesheet("a { b { c } } p { width: 20px }")
	tu.AssertEqual(t, len(rules), 2)
	tu.AssertEqual(t, len(rules[0].Content), 9)
}

package selector

import (
	"testing"

	"golang.org/x/net/html"

	pa "github.com/flowrender/flowrender/css/parser"
	tu "github.com/flowrender/flowrender/utils/testutils"
)

func parse(s string) []Sel { return ParseGroup(pa.Tokenize(s)) }

func TestParseSimple(t *testing.T) {
	tu.AssertEqual(t, parse("div"), []Sel{{Tag: "div"}})
	tu.AssertEqual(t, parse("DIV"), []Sel{{Tag: "div"}})
	tu.AssertEqual(t, parse(".warning"), []Sel{{Classes: []string{"warning"}}})
	tu.AssertEqual(t, parse("#nav"), []Sel{{ID: "nav"}})
	tu.AssertEqual(t, parse("*"), []Sel{{}})
	tu.AssertEqual(t, parse(" div "), []Sel{{Tag: "div"}})
}

func TestParseCompound(t *testing.T) {
	tu.AssertEqual(t, parse("div.a.b#i"), []Sel{{
		Tag: "div", ID: "i", Classes: []string{"a", "b"},
	}})
	tu.AssertEqual(t, parse("*.a"), []Sel{{Classes: []string{"a"}}})
}

func TestParseGroupCommas(t *testing.T) {
	tu.AssertEqual(t, parse("div, .c , #i"), []Sel{
		{Tag: "div"}, {Classes: []string{"c"}}, {ID: "i"},
	})
}

func TestParseUnsupported(t *testing.T) {
	for _, s := range []string{
		"div p",     // descendant combinator
		"div > p",   // child combinator
		"div + p",   // sibling combinator
		"a:hover",   // pseudo class
		"p[title]",  // attribute selector
		"div span.c",
		"div div",
		"div,",      // trailing comma
		",div",
		"div.",      // dangling class dot
		"",
	} {
		if got := parse(s); got != nil {
			t.Fatalf("expected %q to be rejected, got %v", s, got)
		}
	}
}

func TestSpecificity(t *testing.T) {
	tu.AssertEqual(t, parse("*")[0].Specificity(), Specificity{0, 0, 0})
	tu.AssertEqual(t, parse("div")[0].Specificity(), Specificity{0, 0, 1})
	tu.AssertEqual(t, parse(".a.b")[0].Specificity(), Specificity{0, 2, 0})
	tu.AssertEqual(t, parse("div.a#i")[0].Specificity(), Specificity{1, 1, 1})
}

func TestSpecificityLess(t *testing.T) {
	tu.AssertEqual(t, Specificity{0, 0, 1}.Less(Specificity{0, 1, 0}), true)
	tu.AssertEqual(t, Specificity{0, 1, 0}.Less(Specificity{1, 0, 0}), true)
	// one id outweighs any number of classes
	tu.AssertEqual(t, Specificity{1, 0, 0}.Less(Specificity{0, 10, 10}), false)
	tu.AssertEqual(t, Specificity{0, 1, 1}.Less(Specificity{0, 1, 1}), false)
}

func element(tag string, attrs ...string) *html.Node {
	node := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i < len(attrs); i += 2 {
		node.Attr = append(node.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return node
}

func TestMatch(t *testing.T) {
	div := element("div", "id", "i", "class", "a b")

	tu.AssertEqual(t, parse("div")[0].Match(div), true)
	tu.AssertEqual(t, parse("p")[0].Match(div), false)
	tu.AssertEqual(t, parse("*")[0].Match(div), true)
	tu.AssertEqual(t, parse("#i")[0].Match(div), true)
	tu.AssertEqual(t, parse("#other")[0].Match(div), false)

	// every class of the selector must be on the element
	tu.AssertEqual(t, parse(".a")[0].Match(div), true)
	tu.AssertEqual(t, parse(".a.b")[0].Match(div), true)
	tu.AssertEqual(t, parse(".a.c")[0].Match(div), false)
	tu.AssertEqual(t, parse("div.b#i")[0].Match(div), true)

	text := &html.Node{Type: html.TextNode, Data: "div"}
	tu.AssertEqual(t, parse("*")[0].Match(text), false)
}

func TestMatchNoAttributes(t *testing.T) {
	plain := element("span")
	tu.AssertEqual(t, parse(".a")[0].Match(plain), false)
	tu.AssertEqual(t, parse("#i")[0].Match(plain), false)
	tu.AssertEqual(t, parse("span")[0].Match(plain), true)
}

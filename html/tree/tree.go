// Package tree parses the input document and resolves the computed
// style of each element, cascading the user agent stylesheet, author
// stylesheets and style attributes.
package tree

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pa "github.com/flowrender/flowrender/css/parser"
	"github.com/flowrender/flowrender/css/selector"
	"github.com/flowrender/flowrender/css/validation"
)

// HTML is a parsed input document.
type HTML struct {
	Root *html.Node // the <html> element
	doc  *html.Node
}

// NewHTML parses an HTML document.
func NewHTML(source string) (*HTML, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	root := findRoot(doc)
	if root == nil {
		return nil, fmt.Errorf("no root element in document")
	}
	return &HTML{Root: root, doc: doc}, nil
}

func findRoot(node *html.Node) *html.Node {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}

// StyleSheets parses the content of the document's <style> elements,
// in document order.
func (h *HTML) StyleSheets() []CSS {
	var out []CSS
	iterNodes(h.doc, func(node *html.Node) {
		if node.Type == html.ElementNode && node.DataAtom == atom.Style {
			var sb strings.Builder
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				if child.Type == html.TextNode {
					sb.WriteString(child.Data)
				}
			}
			out = append(out, NewCSS(sb.String()))
		}
	})
	return out
}

func iterNodes(node *html.Node, fn func(*html.Node)) {
	fn(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		iterNodes(child, fn)
	}
}

// matchRule is one selector of a style rule, bound to the rule's
// validated declarations.
type matchRule struct {
	sel          selector.Sel
	declarations []validation.ValidatedProperty
}

// CSS is a parsed and validated stylesheet.
type CSS struct {
	rules []matchRule
}

// NewCSS parses a stylesheet. Unsupported selectors and invalid
// declarations are dropped, with a warning for the latter.
func NewCSS(source string) CSS {
	var out CSS
	for _, rule := range pa.ParseStylesheet(source) {
		group := selector.ParseGroup(rule.Prelude)
		if group == nil {
			continue
		}
		declarations, _ := pa.ParseDeclarationTokens(rule.Content)
		validated := validation.PreprocessDeclarations(declarations)
		if len(validated) == 0 {
			continue
		}
		for _, sel := range group {
			out.rules = append(out.rules, matchRule{sel: sel, declarations: validated})
		}
	}
	return out
}

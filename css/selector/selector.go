// Package selector matches CSS selectors against HTML nodes.
//
// Only compound selectors made of a type (or universal) selector,
// class selectors and an ID selector are supported, grouped with
// commas. Combinators and pseudo classes are rejected at parse time.
package selector

import (
	"strings"

	"golang.org/x/net/html"

	pa "github.com/flowrender/flowrender/css/parser"
)

// Specificity encodes the cascade priority of a selector,
// as (id, class, type) counts.
// See https://www.w3.org/TR/selectors-3/#specificity
type Specificity [3]int

// Less returns true if s has a lower priority than other.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Sel is a compound selector.
type Sel struct {
	Tag     string // lowercase element name, empty for "*"
	ID      string
	Classes []string
}

// Specificity returns the cascade priority of the selector.
func (s Sel) Specificity() Specificity {
	out := Specificity{0, len(s.Classes), 0}
	if s.ID != "" {
		out[0] = 1
	}
	if s.Tag != "" {
		out[2] = 1
	}
	return out
}

// Match returns true if the element node matches the selector.
func (s Sel) Match(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	if s.Tag != "" && node.Data != s.Tag {
		return false
	}
	if s.ID != "" && attr(node, "id") != s.ID {
		return false
	}
	if len(s.Classes) != 0 {
		classes := strings.Fields(attr(node, "class"))
		for _, want := range s.Classes {
			if !contains(classes, want) {
				return false
			}
		}
	}
	return true
}

func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func contains(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// ParseGroup parses a comma separated group of compound selectors
// from a rule prelude. It returns nil if any selector in the group
// is unsupported: per the CSS cascade rules the whole rule must then
// be ignored.
func ParseGroup(prelude []pa.Token) []Sel {
	var (
		out     []Sel
		current Sel
		seen    bool
	)
	flush := func() bool {
		if !seen {
			return false
		}
		out = append(out, current)
		current = Sel{}
		seen = false
		return true
	}
	it := pa.NewIter(prelude)
	for it.HasNext() {
		switch t := it.Next().(type) {
		case pa.Whitespace:
			// a descendant combinator would show up as
			// whitespace between two simple selectors
			if seen && nextIsSimple(it) {
				return nil
			}
		case pa.Ident:
			if seen && current.Tag != "" {
				return nil
			}
			current.Tag = strings.ToLower(t.Value)
			seen = true
		case pa.Hash:
			current.ID = t.Value
			seen = true
		case pa.Literal:
			switch t.Value {
			case "*":
				seen = true
			case ".":
				if !it.HasNext() {
					return nil
				}
				name, ok := it.Next().(pa.Ident)
				if !ok {
					return nil
				}
				current.Classes = append(current.Classes, name.Value)
				seen = true
			case ",":
				if !flush() {
					return nil
				}
			default: // combinators, attribute selectors...
				return nil
			}
		default:
			return nil
		}
	}
	if !flush() {
		return nil
	}
	return out
}

func nextIsSimple(it *pa.TokensIter) bool {
	save := *it
	t := it.NextSignificant()
	*it = save
	switch t := t.(type) {
	case pa.Ident, pa.Hash:
		return true
	case pa.Literal:
		return t.Value == "*" || t.Value == "."
	}
	return false
}

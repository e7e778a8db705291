package parser

import "fmt"

// Declaration is a "name: value" pair from a declaration block
// or an inline style attribute.
type Declaration struct {
	Name  string
	Value []Token
	pos   Pos
}

func (d Declaration) Pos() Pos { return d.pos }

// QualifiedRule is a style rule: a selector prelude and a
// declaration block.
type QualifiedRule struct {
	Prelude []Token
	Content []Token
	pos     Pos
}

func (r QualifiedRule) Pos() Pos { return r.pos }

// TokensIter walks a token list, with lookahead for significant
// (non whitespace) tokens.
type TokensIter struct {
	tokens []Token
	index  int
}

func NewIter(tokens []Token) *TokensIter { return &TokensIter{tokens: tokens} }

func (it *TokensIter) HasNext() bool { return it.index < len(it.tokens) }

func (it *TokensIter) Next() Token {
	t := it.tokens[it.index]
	it.index++
	return t
}

// NextSignificant returns the next non whitespace token, or nil at
// the end of the input.
func (it *TokensIter) NextSignificant() Token {
	for it.HasNext() {
		t := it.Next()
		if _, isWs := t.(Whitespace); !isWs {
			return t
		}
	}
	return nil
}

// ParseDeclarationList parses a declaration block (without the braces),
// as found in a <style> rule body or a style="" attribute.
// Invalid declarations are dropped and reported as [ParseError] values.
func ParseDeclarationList(css string) ([]Declaration, []ParseError) {
	return parseDeclarations(Tokenize(css))
}

// ParseDeclarationTokens is ParseDeclarationList on an already
// tokenized input, e.g. a rule body.
func ParseDeclarationTokens(tokens []Token) ([]Declaration, []ParseError) {
	return parseDeclarations(tokens)
}

func parseDeclarations(tokens []Token) ([]Declaration, []ParseError) {
	var (
		out  []Declaration
		errs []ParseError
	)
	it := NewIter(tokens)
	for {
		first := it.NextSignificant()
		if first == nil {
			return out, errs
		}
		if lit, ok := first.(Literal); ok && lit.Value == ";" {
			continue // empty declaration
		}
		decl, err := parseOneDeclaration(first, it)
		if err != nil {
			errs = append(errs, *err)
			// resynchronize on the next ";"
			for it.HasNext() {
				if lit, ok := it.Next().(Literal); ok && lit.Value == ";" {
					break
				}
			}
			continue
		}
		out = append(out, decl)
	}
}

func parseOneDeclaration(first Token, it *TokensIter) (Declaration, *ParseError) {
	name, ok := first.(Ident)
	if !ok {
		return Declaration{}, &ParseError{
			Message: fmt.Sprintf("expected <ident> for declaration name, got %s", first.Kind()),
			pos:     first.Pos(),
		}
	}
	colon := it.NextSignificant()
	if colon == nil {
		return Declaration{}, &ParseError{
			Message: "expected ':' after declaration name, got EOF",
			pos:     first.Pos(),
		}
	}
	if lit, ok := colon.(Literal); !ok || lit.Value != ":" {
		return Declaration{}, &ParseError{
			Message: fmt.Sprintf("expected ':' after declaration name, got %s", colon.Kind()),
			pos:     colon.Pos(),
		}
	}
	var value []Token
	for it.HasNext() {
		t := it.Next()
		if lit, ok := t.(Literal); ok && lit.Value == ";" {
			break
		}
		value = append(value, t)
	}
	// trim trailing whitespace
	for len(value) != 0 {
		if _, isWs := value[len(value)-1].(Whitespace); !isWs {
			break
		}
		value = value[:len(value)-1]
	}
	if len(value) == 0 {
		return Declaration{}, &ParseError{
			Message: fmt.Sprintf("empty value for property %s", name.Value),
			pos:     name.Pos(),
		}
	}
	return Declaration{Name: name.Value, Value: value, pos: name.Pos()}, nil
}

// ParseStylesheet parses a list of style rules. At-rules and rules
// with malformed blocks are skipped, per the CSS error recovery rules.
func ParseStylesheet(css string) []QualifiedRule {
	tokens := Tokenize(css)
	var out []QualifiedRule
	it := NewIter(tokens)
	for {
		first := it.NextSignificant()
		if first == nil {
			return out
		}
		// at-rules are not supported: skip to the end of their
		// block or to the next ";"
		var prelude []Token
		pos := first.Pos()
		t := first
		badRule := false
		for {
			if lit, ok := t.(Literal); ok && lit.Value == "{" {
				break
			}
			if _, isErr := t.(ParseError); isErr {
				badRule = true
			}
			prelude = append(prelude, t)
			if !it.HasNext() {
				return out
			}
			t = it.Next()
		}
		content, closed := consumeBlock(it)
		if badRule || !closed || len(prelude) == 0 {
			continue
		}
		out = append(out, QualifiedRule{Prelude: prelude, Content: content, pos: pos})
	}
}

// consumeBlock consumes tokens until the matching "}".
func consumeBlock(it *TokensIter) (content []Token, closed bool) {
	depth := 1
	for it.HasNext() {
		t := it.Next()
		if lit, ok := t.(Literal); ok {
			switch lit.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth == 0 {
					return content, true
				}
			}
		}
		content = append(content, t)
	}
	return content, false
}

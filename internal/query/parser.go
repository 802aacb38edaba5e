package query

import (
	"fmt"

	"htmlgrep/internal/html"
)

// ParseError describes a selector expression that could not be parsed.
// Pos is a byte offset into Input and Expected names what the parser was
// looking for there.
type ParseError struct {
	Input    string
	Pos      int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid selector %q: expected %s at offset %d", e.Input, e.Expected, e.Pos)
}

// Parse turns a selector expression into a Query.
//
// Grammar:
//
//	query    = chain *( "," chain )
//	chain    = compound *( combinator compound )
//	compound = [ tag | "*" ] *( "#" name | "." name | "[" name "=" value "]" )
//
// A "," unions chains, whitespace between compounds is the descendant
// combinator, and ">" is the direct-child combinator; both combinators
// associate to the left. Attribute values may be quoted with single or
// double quotes.
func Parse(input string) (Query, error) {
	p := &parser{input: input}
	q, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.expected("end of selector")
	}
	return q, nil
}

type parser struct {
	input string
	pos   int
}

// parseUnion handles comma-separated chains, the lowest precedence level.
func (p *parser) parseUnion() (Query, error) {
	left, err := p.parseChain()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.consume(',') {
			return left, nil
		}
		right, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		left = Union{Left: left, Right: right}
	}
}

// parseChain handles combinator sequences: "div p" descends to any depth,
// "div > p" restricts to direct children.
func (p *parser) parseChain() (Query, error) {
	p.skipSpace()
	left, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	var q Query = left
	for {
		spaced := p.skipSpace()
		switch {
		case p.consume('>'):
			p.skipSpace()
			right, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			q = Child{Left: q, Right: right}
		case spaced && p.startsCompound():
			right, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			q = Descendant{Left: q, Right: right}
		default:
			return q, nil
		}
	}
}

// parseCompound reads one simple selector: an optional tag name (or "*"),
// followed by any number of #id, .class and [key=value] constraints.
func (p *parser) parseCompound() (Selector, error) {
	var sel Selector
	any := false
	if p.consume('*') {
		// Universal selector: no tag constraint.
		any = true
	} else if name := p.readName(); name != "" {
		sel.Tag = name
		any = true
	}
	for {
		switch {
		case p.consume('#'):
			id := p.readName()
			if id == "" {
				return Selector{}, p.expected("id after '#'")
			}
			sel.IDs = append(sel.IDs, id)
			any = true
		case p.consume('.'):
			class := p.readName()
			if class == "" {
				return Selector{}, p.expected("class after '.'")
			}
			sel.Classes = append(sel.Classes, class)
			any = true
		case p.consume('['):
			attr, err := p.parseAttr()
			if err != nil {
				return Selector{}, err
			}
			sel.Attrs = append(sel.Attrs, attr)
			any = true
		default:
			if !any {
				return Selector{}, p.expected("a selector")
			}
			return sel, nil
		}
	}
}

// parseAttr reads the inside of a [key=value] constraint; the opening
// bracket has already been consumed. Only the equality form exists: a bare
// [key] existence check has no attribute pair to require.
func (p *parser) parseAttr() (html.Attribute, error) {
	p.skipSpace()
	key := p.readName()
	if key == "" {
		return html.Attribute{}, p.expected("attribute name")
	}
	p.skipSpace()
	if !p.consume('=') {
		return html.Attribute{}, p.expected("'=' after attribute name")
	}
	p.skipSpace()
	val, err := p.readValue()
	if err != nil {
		return html.Attribute{}, err
	}
	p.skipSpace()
	if !p.consume(']') {
		return html.Attribute{}, p.expected("']'")
	}
	return html.Attribute{Key: key, Val: val}, nil
}

// readValue reads an attribute value: a quoted string, or a bare token
// running to the closing bracket.
func (p *parser) readValue() (string, error) {
	if quote, ok := p.peekQuote(); ok {
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != quote {
			p.pos++
		}
		if p.pos == len(p.input) {
			return "", p.expected("closing quote")
		}
		val := p.input[start:p.pos]
		p.pos++
		return val, nil
	}
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ']' && !isSpace(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos], nil
}

func (p *parser) expected(what string) error {
	return &ParseError{Input: p.input, Pos: p.pos, Expected: what}
}

// skipSpace advances past whitespace and reports whether any was skipped.
func (p *parser) skipSpace() bool {
	start := p.pos
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

func (p *parser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// startsCompound reports whether the next byte can begin a compound
// selector, which decides if trailing whitespace was a descendant
// combinator.
func (p *parser) startsCompound() bool {
	if p.eof() {
		return false
	}
	c := p.input[p.pos]
	return c == '*' || c == '#' || c == '.' || c == '[' || isNameChar(c)
}

func (p *parser) readName() string {
	start := p.pos
	for p.pos < len(p.input) && isNameChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) peekQuote() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	if c := p.input[p.pos]; c == '"' || c == '\'' {
		return c, true
	}
	return 0, false
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements have no content and no end tag; their start tag never opens
// a scope. List per the HTML standard.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Parse reads HTML and builds the top-level node forest.
//
// The x/net tokenizer is used here rather than its tree parser on purpose:
// the tree parser inserts the implied html/head/body structure and relocates
// content into it, while a search must see exactly the elements the input
// wrote, where it wrote them. Recovery is tolerant in the usual HTML way:
// unclosed elements are closed implicitly at end of input, stray end tags
// are dropped, and a mismatched end tag closes everything back to the
// nearest open element of that name. Comments and doctypes are discarded,
// so the resulting forest contains only elements and text.
func Parse(r io.Reader) (*Document, error) {
	z := html.NewTokenizer(r)
	doc := &Document{}
	var open []*Node

	insert := func(n *Node) {
		if len(open) == 0 {
			doc.Nodes = append(doc.Nodes, n)
			return
		}
		parent := open[len(open)-1]
		parent.Children = append(parent.Children, n)
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("failed to tokenize HTML: %w", err)
			}
			return doc, nil

		case html.TextToken:
			insert(&Node{Type: TextNode, Data: string(z.Text())})

		case html.StartTagToken:
			n := elementNode(z.Token())
			insert(n)
			if !voidElements[n.Data] {
				open = append(open, n)
			}

		case html.SelfClosingTagToken:
			insert(elementNode(z.Token()))

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].Data == tag {
					open = open[:i]
					break
				}
			}
			// No matching open element: the stray end tag is dropped.

		case html.CommentToken, html.DoctypeToken:
			// Not part of the document model.
		}
	}
}

// ParseString parses a document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// elementNode converts a start tag token into an element with its
// attributes in source order.
func elementNode(t html.Token) *Node {
	n := &Node{Type: ElementNode, Data: t.Data}
	if len(t.Attr) > 0 {
		n.Attr = make([]Attribute, len(t.Attr))
		for i, a := range t.Attr {
			n.Attr[i] = Attribute{Key: a.Key, Val: a.Val}
		}
	}
	return n
}

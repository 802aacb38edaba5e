package html

// NodeType distinguishes the two kinds of nodes a parsed document contains
type NodeType int

const (
	// TextNode is a leaf holding character data. It has no attributes or
	// children and never matches a selector.
	TextNode NodeType = iota
	// ElementNode is a tag with an ordered attribute list and an ordered
	// list of children.
	ElementNode
)

// Attribute represents a single key/value pair on an element
type Attribute struct {
	Key string // attribute name, lowercased by the tokenizer
	Val string // attribute value with entities decoded
}

// Node represents one node of a parsed HTML tree. For TextNode, Data holds
// the text content and Attr and Children stay empty. For ElementNode, Data
// holds the tag name. Trees are never modified after parsing; the search
// engine only reads them.
type Node struct {
	Type     NodeType
	Data     string
	Attr     []Attribute
	Children []*Node
}

// Document represents one parsed HTML input: an ordered forest of top-level
// nodes rather than a single root, so "<p>a</p><p>b</p>" yields two entries.
type Document struct {
	Nodes []*Node
}

// HasAttr reports whether the element carries the exact key/value pair.
// Attributes are compared as whole pairs: extra attributes are ignored,
// duplicate keys are allowed, and multi-valued attributes such as
// class="a b" are a single pair with the literal value "a b".
func (n *Node) HasAttr(key, val string) bool {
	for _, a := range n.Attr {
		if a.Key == key && a.Val == val {
			return true
		}
	}
	return false
}

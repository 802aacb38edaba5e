// Package query defines the selector expression model and its parser.
package query

import "htmlgrep/internal/html"

// Query is one node of a parsed selector expression. The four
// implementations (Selector, Descendant, Child and Union) form a closed
// set the search engine dispatches over.
type Query interface {
	query()
}

// Selector matches a single element by tag name and required attribute
// pairs. The zero Selector carries no constraints and matches every
// element.
type Selector struct {
	// Tag, when non-empty, must equal the element's tag name exactly.
	// The tokenizer lowercases HTML tag names, so selectors written in
	// lowercase match regardless of the input's casing.
	Tag string

	// IDs, Classes and Attrs all reduce to required attribute pairs:
	// an id i requires ("id", i), a class c requires ("class", c), and
	// an Attrs entry is required as written. Every pair must be present
	// for the element to match.
	IDs     []string
	Classes []string
	Attrs   []html.Attribute
}

// Descendant matches Right anywhere inside the subtree of a Left match,
// at any depth.
type Descendant struct {
	Left  Query
	Right Query
}

// Child matches Right only among the direct children of a Left match.
type Child struct {
	Left  Query
	Right Query
}

// Union concatenates the matches of Left and Right, in that order, with
// no deduplication: a subtree matched by both sides appears twice.
type Union struct {
	Left  Query
	Right Query
}

func (Selector) query()   {}
func (Descendant) query() {}
func (Child) query()      {}
func (Union) query()      {}

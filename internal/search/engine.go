// Package search evaluates selector queries against parsed HTML documents.
package search

import (
	"htmlgrep/internal/html"
	"htmlgrep/internal/query"
)

// File pairs an input path with its parsed document.
type File struct {
	Path string
	Doc  *html.Document
}

// FileMatch is one matched subtree tagged with the input it came from.
type FileMatch struct {
	Path string
	Node *html.Node
}

// Search returns the subtrees of doc matched by q, in document order.
// The whole forest is searched at unrestricted depth, whatever the
// outermost combinator is.
func Search(q query.Query, doc *html.Document) []*html.Node {
	return searchNodes(true, q, doc.Nodes)
}

// SearchFiles runs q over each document in order and tags every match with
// its file's path. All of one file's matches precede the next file's;
// files with no matches contribute nothing.
func SearchFiles(q query.Query, files []File) []FileMatch {
	var out []FileMatch
	for _, f := range files {
		for _, n := range Search(q, f.Doc) {
			out = append(out, FileMatch{Path: f.Path, Node: n})
		}
	}
	return out
}

// Limit caps the combined match sequence at max entries. The cap applies
// across the whole sequence, not per file; a negative max means unlimited.
func Limit(matches []FileMatch, max int) []FileMatch {
	if max < 0 || len(matches) <= max {
		return matches
	}
	return matches[:max]
}

// searchNodes collects matches across a node list, earlier nodes first.
// Text nodes are skipped: they never match and have nothing to descend
// into. The recursive flag is scope, not query state: true means a
// non-matching element's subtree is still searched, false confines
// matching to exactly this level.
func searchNodes(recursive bool, q query.Query, nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		out = append(out, searchNode(recursive, q, n)...)
	}
	return out
}

// searchNode evaluates q against a single element.
func searchNode(recursive bool, q query.Query, n *html.Node) []*html.Node {
	switch q := q.(type) {
	case query.Selector:
		// A match claims the whole subtree: the engine never looks
		// inside a matched element for further matches of the same
		// selector, so matches cannot overlap.
		if q.Matches(n) {
			return []*html.Node{n}
		}
		if recursive {
			return searchNodes(true, q, n.Children)
		}
		return nil

	case query.Descendant:
		// The right side may match anywhere below a left match, so the
		// children of each match are searched with recursion forced on,
		// whatever scope this level was evaluated under.
		var out []*html.Node
		for _, m := range searchNode(recursive, q.Left, n) {
			out = append(out, searchNodes(true, q.Right, m.Children)...)
		}
		return out

	case query.Child:
		// Like Descendant, but the right side is confined to the direct
		// children of each left match.
		var out []*html.Node
		for _, m := range searchNode(recursive, q.Left, n) {
			out = append(out, searchNodes(false, q.Right, m.Children)...)
		}
		return out

	case query.Union:
		out := searchNode(recursive, q.Left, n)
		return append(out, searchNode(recursive, q.Right, n)...)

	default:
		return nil
	}
}

package query

import "htmlgrep/internal/html"

// Matches reports whether the element satisfies every constraint of the
// selector. Ids and classes are required as exact attribute pairs: ".title"
// requires the literal pair ("class", "title"), so class="title wide" does
// not match it. Multi-valued class attributes are never tokenized.
func (s Selector) Matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if s.Tag != "" && s.Tag != n.Data {
		return false
	}
	for _, id := range s.IDs {
		if !n.HasAttr("id", id) {
			return false
		}
	}
	for _, class := range s.Classes {
		if !n.HasAttr("class", class) {
			return false
		}
	}
	for _, a := range s.Attrs {
		if !n.HasAttr(a.Key, a.Val) {
			return false
		}
	}
	return true
}

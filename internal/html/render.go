package html

import "strings"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// rawTextElements hold literal character data: their text children were
// tokenized without entity decoding and are rendered back without escaping.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}

// RenderString serializes the subtree rooted at n back to HTML text:
// attributes in stored order, text escaped except inside raw-text elements,
// void elements without an end tag.
func RenderString(n *Node) string {
	var sb strings.Builder
	render(&sb, n)
	return sb.String()
}

func render(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(textEscaper.Replace(n.Data))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(a.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')

	if voidElements[n.Data] {
		return
	}

	if rawTextElements[n.Data] {
		for _, c := range n.Children {
			if c.Type == TextNode {
				sb.WriteString(c.Data)
			} else {
				render(sb, c)
			}
		}
	} else {
		for _, c := range n.Children {
			render(sb, c)
		}
	}

	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteByte('>')
}

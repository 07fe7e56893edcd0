// Package xmltext flattens parsed XML nodes into display text: the
// concatenation of every descendant text node in document order, with markup
// dropped. Filters let a caller take over the rendering of selected elements,
// which is how highlight markers get decorated instead of flattened.
package xmltext

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Filter overrides the rendering of the elements it matches. A matched
// element is not descended into: Render owns its whole subtree.
type Filter struct {
	Match  func(n *xmlquery.Node) bool
	Render func(n *xmlquery.Node) string
}

// Flatten returns the text content of n's subtree.
func Flatten(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}

// FlattenFiltered behaves like Flatten but routes every element matched by a
// filter through its Render function. Filters are tried in order and the
// first match wins. Comments never contribute text.
func FlattenFiltered(n *xmlquery.Node, filters ...Filter) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	flattenInto(&b, n, filters)
	return b.String()
}

func flattenInto(b *strings.Builder, n *xmlquery.Node, filters []Filter) {
	switch n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode:
		b.WriteString(n.Data)
		return
	case xmlquery.CommentNode, xmlquery.DeclarationNode:
		return
	case xmlquery.AttributeNode:
		b.WriteString(n.InnerText())
		return
	case xmlquery.ElementNode:
		for _, f := range filters {
			if f.Match != nil && f.Match(n) {
				if f.Render != nil {
					b.WriteString(f.Render(n))
				}
				return
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		flattenInto(b, child, filters)
	}
}

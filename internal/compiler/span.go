package compiler

import (
	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/supermd/pkg/interfaces"
)

// spanOf approximates a Span for an inline node by scanning its
// descendants for the first and last goldmark text segment. Link and
// Image nodes carry no span of their own in goldmark — only leaf text
// nodes do — so an empty-bracket directive ("[]($section)") has no text
// descendant to report and yields the zero Span.
func spanOf(n ast.Node) interfaces.Span {
	first, last := -1, -1
	var walk func(ast.Node)
	walk = func(node ast.Node) {
		if t, ok := node.(*ast.Text); ok {
			start, end := t.Segment.Start, t.Segment.Stop
			if first == -1 || start < first {
				first = start
			}
			if last == -1 || end > last {
				last = end
			}
			return
		}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	if first == -1 {
		return interfaces.Span{}
	}
	return interfaces.Span{Start: first, End: last}
}

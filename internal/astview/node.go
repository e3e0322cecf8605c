// Package astview adapts github.com/yuin/goldmark's ast.Node into
// pkg/interfaces.Node: kind, navigation, literal text, unlink, and a
// directive-attachment slot. Literal() is the seam that makes goldmark's
// byte-span text nodes look like owned literals to the rest of the
// compiler — goldmark stores text as offsets into the original source
// buffer, not copied strings, so every view carries that buffer alongside
// the node it wraps.
package astview

import (
	"bytes"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/supermd/pkg/interfaces"
)

// directiveAttrKey is the one opaque per-node slot spec.md §3/§9 calls for.
// goldmark already exposes exactly this slot via SetAttribute/Attribute,
// so this module never needs the side-map-by-identity fallback the design
// notes describe for AST libraries that offer none.
var directiveAttrKey = []byte("supermd:directive")

type view struct {
	node   ast.Node
	source []byte
}

// Wrap adapts a goldmark ast.Node (and the source buffer it was parsed
// from) into an interfaces.Node. Wrapping nil returns nil.
func Wrap(node ast.Node, source []byte) interfaces.Node {
	if node == nil {
		return nil
	}
	return &view{node: node, source: source}
}

// Unwrap returns the underlying goldmark node, for callers (the compiler
// driver) that need to pass it back into goldmark APIs such as ast.Walk.
func Unwrap(n interfaces.Node) ast.Node {
	v, ok := n.(*view)
	if !ok || v == nil {
		return nil
	}
	return v.node
}

func (v *view) Kind() interfaces.NodeKind {
	return mapKind(v.node.Kind())
}

func (v *view) Parent() interfaces.Node {
	return Wrap(v.node.Parent(), v.source)
}

func (v *view) FirstChild() interfaces.Node {
	return Wrap(v.node.FirstChild(), v.source)
}

func (v *view) NextSibling() interfaces.Node {
	return Wrap(v.node.NextSibling(), v.source)
}

func (v *view) Literal() string {
	return literalOf(v.node, v.source)
}

// Unlink detaches this node from its parent via goldmark's own
// parent.RemoveChild, the only supported way to mutate a goldmark tree's
// shape.
func (v *view) Unlink() {
	parent := v.node.Parent()
	if parent == nil {
		return
	}
	parent.RemoveChild(parent, v.node)
}

func (v *view) AttachDirective(value any) {
	v.node.SetAttribute(directiveAttrKey, value)
}

func (v *view) Directive() any {
	value, ok := v.node.Attribute(directiveAttrKey)
	if !ok {
		return nil
	}
	return value
}

func (v *view) Identity() any {
	return v.node
}

func mapKind(k ast.NodeKind) interfaces.NodeKind {
	switch k {
	case ast.KindDocument:
		return interfaces.KindDocument
	case ast.KindParagraph:
		return interfaces.KindParagraph
	case ast.KindHeading:
		return interfaces.KindHeading
	case ast.KindBlockquote:
		return interfaces.KindBlockQuote
	case ast.KindCodeSpan:
		return interfaces.KindCode
	case ast.KindLink:
		return interfaces.KindLink
	case ast.KindImage:
		return interfaces.KindImage
	default:
		return interfaces.KindUnknown
	}
}

// literalOf concatenates the literal bytes of n's text-bearing
// descendants against source. *ast.Text and *ast.String nodes are
// goldmark's own leaf text carriers; everything else (CodeSpan, Link,
// Heading, …) is walked to gather theirs.
func literalOf(n ast.Node, source []byte) string {
	switch tn := n.(type) {
	case *ast.Text:
		return string(tn.Segment.Value(source))
	case *ast.String:
		return string(tn.Value)
	default:
		var buf bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			buf.WriteString(literalOf(c, source))
		}
		return buf.String()
	}
}

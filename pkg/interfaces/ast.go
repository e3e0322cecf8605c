package interfaces

// NodeKind enumerates the AST node kinds the compiler cares about. The set
// mirrors the handful of CommonMark/GFM constructs a directive can attach to
// or validate against; it is not a full node taxonomy.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota
	KindDocument
	KindParagraph
	KindHeading
	KindBlockQuote
	KindCode
	KindLink
	KindImage
)

// String renders the node kind for diagnostics and test failure messages.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "DOCUMENT"
	case KindParagraph:
		return "PARAGRAPH"
	case KindHeading:
		return "HEADING"
	case KindBlockQuote:
		return "BLOCK_QUOTE"
	case KindCode:
		return "CODE"
	case KindLink:
		return "LINK"
	case KindImage:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// Node is the capability set the compiler needs from a foreign AST node. It
// is deliberately narrow: kind, navigation, literal text, unlink, and one
// opaque per-node slot used to dangle a directive. The one shipped
// implementation, internal/astview, wraps github.com/yuin/goldmark's
// ast.Node; nothing in this package or internal/directive,
// internal/builtins, or internal/placement imports goldmark directly
// (internal/compiler does, to parse and walk the document).
type Node interface {
	Kind() NodeKind
	Parent() Node
	FirstChild() Node
	NextSibling() Node
	Literal() string

	// Unlink detaches this node from its parent. Used by the Katex
	// placement rule to consume its inline-code child.
	Unlink()

	// AttachDirective associates an opaque value (a *directive.Directive in
	// practice) with this node. At most one value may be attached; callers
	// are responsible for calling it at most once per node.
	AttachDirective(v any)

	// Directive returns the previously attached value, or nil if none was
	// attached.
	Directive() any

	// Identity returns an opaque, comparable value identifying the
	// underlying AST node, so callers (the placement validator's
	// "is this the first child" checks) can tell whether two Node handles
	// refer to the same node without the capability set growing an
	// equality method for every pairwise comparison.
	Identity() any
}

// Span identifies the source-text range a diagnostic refers to. Byte offsets
// are relative to the start of the document that was parsed.
type Span struct {
	Start int
	End   int
}

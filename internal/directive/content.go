package directive

import "github.com/goliatone/supermd/pkg/interfaces"

// Content is the global root exposed to each directive expression. It
// holds one default-constructed Directive per kind and acts purely as a
// namespace: $section, $block, … resolve to these fields by reference, so
// subsequent builtin calls mutate the same instance a field access handed
// out earlier. Lifetime: stack-scoped per directive expression — the
// compiler driver constructs a fresh Content for every directive-link
// node it evaluates, never pooling one across expressions.
type Content struct {
	directives map[Kind]*Directive
}

// NewContent builds a Content with one fresh Directive per kind.
func NewContent() *Content {
	c := &Content{directives: make(map[Kind]*Directive, len(Kinds()))}
	for _, k := range Kinds() {
		c.directives[k] = newDirective(k)
	}
	return c
}

// Directive returns the pre-built Directive for kind.
func (c *Content) Directive(kind Kind) *Directive {
	return c.directives[kind]
}

// Field satisfies interfaces.Evaluable, resolving the nine kind namespaces
// to their Directive by reference.
func (c *Content) Field(name string) interfaces.Value {
	for _, k := range Kinds() {
		if k.String() == name {
			return c.directives[k].Handle()
		}
	}
	return interfaces.Err(ErrUnknownContentField(name))
}

// Call satisfies interfaces.Evaluable. A well-formed expression never
// calls the content root directly — it field-accesses a kind namespace
// first — so this always fails.
func (c *Content) Call(string, []interfaces.Value) interfaces.Value {
	return interfaces.Err(ErrCallOnContent)
}

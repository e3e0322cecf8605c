package placement

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateKatex implements spec.md §4.5's Katex rule: the link's first
// child must be an inline code span with non-empty literal text; any
// children after it are not checked. On success the literal is copied
// into Katex.Formula and that code node is unlinked — the one placement
// rule that mutates the tree rather than only inspecting it.
func validateKatex(n interfaces.Node, d *directive.Directive) error {
	code := n.FirstChild()
	if code == nil || code.Kind() != interfaces.KindCode {
		return ErrKatexMissingCode
	}
	literal := code.Literal()
	if literal == "" {
		return ErrKatexMissingCode
	}
	d.SetKatexFormula(literal)
	code.Unlink()
	return nil
}

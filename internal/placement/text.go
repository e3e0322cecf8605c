package placement

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateText implements spec.md §4.5's Text rule. The directive is
// always attached to the inline link node itself (the compiler driver
// only ever evaluates *ast.Link destinations), so "parent must be an
// inline link whose first child has non-empty literal text" reduces to a
// check on n's own first child.
func validateText(n interfaces.Node, _ *directive.Directive) error {
	first := n.FirstChild()
	if first == nil || first.Literal() == "" {
		return ErrTextEmpty
	}
	return nil
}

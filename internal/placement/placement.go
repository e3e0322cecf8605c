// Package placement runs the structural checks a directive must satisfy
// once its expression has evaluated successfully: where in the tree it
// sits relative to its neighbors, and whether every field a kind requires
// has been set. It is a pure validate step — Validate never mutates the
// tree except for Katex, whose rule consumes a child node by design.
package placement

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

type validateFunc func(node interfaces.Node, d *directive.Directive) error

var table = map[directive.Kind]validateFunc{
	directive.KindSection: validateSection,
	directive.KindBlock:   validateBlock,
	directive.KindHeading: validateHeading,
	directive.KindText:    validateText,
	directive.KindKatex:   validateKatex,
	directive.KindLink:    validateLink,
	directive.KindImage:   validateMandatorySrc,
	directive.KindVideo:   validateMandatorySrc,
	directive.KindCode:    validateMandatorySrc,
}

// Validate dispatches to the validate function registered for d's kind
// and runs it against node. Every kind in directive.Kinds() has an entry;
// an unregistered kind is a programming error in this package, not a
// diagnostic condition, so it is not reported as one.
func Validate(node interfaces.Node, d *directive.Directive) error {
	fn := table[d.Kind()]
	if fn == nil {
		return nil
	}
	return fn(node, d)
}

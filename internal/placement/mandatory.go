package placement

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateMandatorySrc implements the generic mandatory-field sweep of
// spec.md §4.5 for the three kinds whose only mandatory field is src and
// that carry no positional constraints of their own: Image, Video, Code.
// Link also requires src, but reaches it through its own synthesis and
// conflict rules (see link.go), not this sweep.
func validateMandatorySrc(_ interfaces.Node, d *directive.Directive) error {
	if d.Src() == nil {
		return directive.ErrMandatoryFieldUnset("src")
	}
	return nil
}

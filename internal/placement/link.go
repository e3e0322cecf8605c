package placement

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateLink implements spec.md §4.5's Link rule. Unlike Image/Video/
// Code, Link's src requirement is never routed through the generic
// mandatory-field sweep: it has its own synthesis and conflict logic
// intertwined with ref/alternative, and its own "missing src" wording.
func validateLink(_ interfaces.Node, d *directive.Directive) error {
	link := d.Link()
	refOrAlt := link.Ref != nil || link.Alternative != nil

	if refOrAlt {
		if d.Src() == nil {
			if err := d.SetSrc(directive.NewSelfPageSrc(nil)); err != nil {
				return err
			}
		} else if kind := d.Src().Kind; kind != directive.SrcPage && kind != directive.SrcSelfPage {
			return ErrLinkRefConflict
		}
	}

	if d.Src() == nil {
		return ErrLinkMissingSrc
	}
	return nil
}

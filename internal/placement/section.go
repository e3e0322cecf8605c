package placement

import (
	"fmt"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateSection implements spec.md §4.5's Section rule. The two legal
// shapes are a placeholder paragraph ("[]($section...)") whose parent is
// the document, and a heading directly under the document.
func validateSection(n interfaces.Node, d *directive.Directive) error {
	if err := validateSectionEndExclusivity(d); err != nil {
		return err
	}

	parent := n.Parent()
	if parent == nil {
		return ErrSectionMisplaced
	}

	switch parent.Kind() {
	case interfaces.KindParagraph:
		grandparent := parent.Parent()
		if grandparent == nil || grandparent.Kind() != interfaces.KindDocument {
			return sectionMisplacedIn(grandparent)
		}
		if parent.FirstChild() == nil || parent.FirstChild().Identity() != n.Identity() {
			return ErrSectionMisplaced
		}
		if n.FirstChild() != nil {
			return ErrSectionMisplaced
		}
		return nil
	case interfaces.KindHeading:
		grandparent := parent.Parent()
		if grandparent == nil || grandparent.Kind() != interfaces.KindDocument {
			return sectionMisplacedIn(grandparent)
		}
		return nil
	default:
		return ErrSectionMisplaced
	}
}

// sectionMisplacedIn names the offending grandparent kind, the "more
// specific message" spec.md §4.5 allows in place of the generic one.
func sectionMisplacedIn(grandparent interfaces.Node) error {
	if grandparent == nil {
		return ErrSectionMisplaced
	}
	return fmt.Errorf("sections must be top level elements or be embedded in headings, found inside '%s'", grandparent.Kind())
}

func validateSectionEndExclusivity(d *directive.Directive) error {
	if d.Section().End == nil {
		return nil
	}
	if d.ID() != nil || d.AttrsSet() || d.Title() != nil || d.DataSet() {
		return ErrSectionEndExclusive
	}
	return nil
}

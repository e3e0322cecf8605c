package placement

import (
	"fmt"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateBlock implements spec.md §4.5's Block rule: a placeholder
// paragraph directly under a quote block, or a heading directly under a
// quote block (a titled block). The paragraph form additionally requires
// the paragraph to be the quote block's first child and the placeholder
// to be the paragraph's first child with no wrapped text; inline content
// after the placeholder in the same paragraph is not checked.
func validateBlock(n interfaces.Node, _ *directive.Directive) error {
	parent := n.Parent()
	if parent == nil {
		return blockMisplacedIn(nil)
	}

	switch parent.Kind() {
	case interfaces.KindParagraph:
		grandparent := parent.Parent()
		if grandparent == nil || grandparent.Kind() != interfaces.KindBlockQuote {
			return blockMisplacedIn(grandparent)
		}
		if grandparent.FirstChild() == nil || grandparent.FirstChild().Identity() != parent.Identity() {
			return ErrBlockNotFirstChild
		}
		if parent.FirstChild() == nil || parent.FirstChild().Identity() != n.Identity() || n.FirstChild() != nil {
			return ErrBlockNotFirstChild
		}
		return nil
	case interfaces.KindHeading:
		grandparent := parent.Parent()
		if grandparent == nil || grandparent.Kind() != interfaces.KindBlockQuote {
			return blockMisplacedIn(grandparent)
		}
		return nil
	default:
		return blockMisplacedIn(parent)
	}
}

// blockMisplacedIn names the actual parent (or grandparent) kind, the
// diagnostic spec.md §4.5 calls for outside the two legal shapes.
func blockMisplacedIn(n interfaces.Node) error {
	if n == nil {
		return fmt.Errorf("block directives must be placed inside a quote block")
	}
	return fmt.Errorf("block directives must be placed inside a quote block, found inside '%s'", n.Kind())
}

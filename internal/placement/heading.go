package placement

import (
	"fmt"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// validateHeading implements spec.md §4.5's Heading rule: the directive
// link must live directly inside a heading.
func validateHeading(n interfaces.Node, _ *directive.Directive) error {
	parent := n.Parent()
	if parent == nil || parent.Kind() != interfaces.KindHeading {
		return headingMisplacedIn(parent)
	}
	return nil
}

func headingMisplacedIn(n interfaces.Node) error {
	if n == nil {
		return fmt.Errorf("heading directives must be placed inside a heading")
	}
	return fmt.Errorf("heading directives must be placed inside a heading, found inside '%s'", n.Kind())
}

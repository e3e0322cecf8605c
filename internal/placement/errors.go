package placement

import "errors"

// Sentinel errors for the fixed-wording diagnostics spec.md §4.5 names
// outright. Messages that must additionally name a parent/grandparent
// kind are built with fmt.Errorf at the call site instead (see section.go,
// block.go, heading.go).
var (
	ErrSectionMisplaced    = errors.New("sections must be top level elements or be embedded in headings")
	ErrSectionEndExclusive = errors.New("'end' may not be combined with any other field")

	ErrBlockNotFirstChild = errors.New("block definitions directly under a quote block cannot embed any text")

	ErrTextEmpty = errors.New("text directive must contain some text between square brackets")

	ErrKatexMissingCode = errors.New("katex directive must wrap a single code span")

	ErrLinkRefConflict = errors.New("'ref' and 'alternative' can only be specified when linking to a content page")
	ErrLinkMissingSrc  = errors.New("missing call to 'url', 'asset', …")
)

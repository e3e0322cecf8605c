// Package ids implements the auto-generated anchor ID supplement: when
// enabled, a Section or Heading directive that reaches placement without
// an explicit id gets one synthesized from its title or literal text.
// Normalization follows the teacher's content.NormalizeSlug
// (github.com/goliatone/go-slug); when normalization yields nothing
// usable, a deterministic opaque ID takes over, the same two-tier
// strategy internal/identity/deterministic.go uses for entity keys.
package ids

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/goliatone/supermd/internal/directive"
)

// Source is whatever text a directive offers for slugification: its own
// title when set, or the literal text of the node it is attached to.
type Source struct {
	Title   *string
	Literal string
}

// Assign fills d's id when it is unset, deriving the value from source and
// disambiguating against seen (so repeated headings in one document don't
// collide). documentPath and nodeOffset seed the deterministic fallback
// used when slugification produces an empty string.
func Assign(d *directive.Directive, source Source, documentPath string, nodeOffset int, seen map[string]int) error {
	if d.ID() != nil {
		return nil
	}

	base := candidateText(source)
	slug, err := NormalizeSlug(base)
	if err != nil || slug == "" {
		slug = fallbackID(documentPath, nodeOffset)
	}

	slug = disambiguate(slug, seen)
	return d.SetID(slug)
}

func candidateText(source Source) string {
	if source.Title != nil && strings.TrimSpace(*source.Title) != "" {
		return *source.Title
	}
	return source.Literal
}

// disambiguate appends -2, -3, … to slug the second and later times it is
// seen within one document, the convention content/slug.go's callers use
// when uniquifying within a single parent collection.
func disambiguate(slug string, seen map[string]int) string {
	if seen == nil {
		return slug
	}
	n := seen[slug]
	seen[slug] = n + 1
	if n == 0 {
		return slug
	}
	return slug + "-" + strconv.Itoa(n+1)
}

// fallbackID derives a deterministic opaque ID from documentPath and
// nodeOffset via hashid, falling back further to a SHA1 name-based UUID
// when hashid itself cannot produce one — the exact two-step fallback
// internal/identity/deterministic.go uses for every entity key.
func fallbackID(documentPath string, nodeOffset int) string {
	key := documentPath + ":" + strconv.Itoa(nodeOffset)
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid.String()
}

package ids

import "github.com/goliatone/go-slug"

// NormalizeSlug applies the default slug normalization rules, the same
// entry point content.NormalizeSlug exposes for the teacher's own slug
// fields.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

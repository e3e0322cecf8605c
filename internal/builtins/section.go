package builtins

// sectionTable is empty: Section's only kind-specific field, End, has no
// public builtin (spec.md's Open Question — see internal/directive's
// SectionBody doc comment). Every Section call resolves through the
// common table (id, attrs, title, data).
func sectionTable() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{}
}

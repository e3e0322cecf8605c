package builtins

// katexTable is empty: Katex.formula is populated exclusively by the
// placement validator from a child code literal, never by a builtin.
func katexTable() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{}
}

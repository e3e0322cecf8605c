package builtins

// headingTable is empty: Heading carries no fields beyond the common ones.
func headingTable() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{}
}

package builtins

// blockTable is empty: Block carries no fields beyond the common ones.
func blockTable() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{}
}

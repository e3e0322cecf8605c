package builtins

// textTable is empty: Text carries no fields beyond the common ones.
func textTable() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{}
}

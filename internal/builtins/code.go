package builtins

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func codeTable() map[string]BuiltinFunc {
	table := srcBuiltins()
	table["language"] = builtinCodeLanguage
	return table
}

func builtinCodeLanguage(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetCodeLanguage(s); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

package builtins

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func imageTable() map[string]BuiltinFunc {
	table := srcBuiltins()
	table["alt"] = builtinImageAlt
	table["linked"] = builtinImageLinked
	return table
}

func builtinImageAlt(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetImageAlt(s); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinImageLinked(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	b, err := oneBool(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetImageLinked(b); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

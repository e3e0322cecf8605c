package builtins

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func linkTable() map[string]BuiltinFunc {
	table := srcBuiltins()
	table["ref"] = builtinLinkRef
	table["unsafeRef"] = builtinLinkUnsafeRef
	table["alternative"] = builtinLinkAlternative
	table["new"] = builtinLinkNew
	return table
}

func builtinLinkRef(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetLinkRef(s, false); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

// unsafeRef shares Ref's field with ref; choosing it additionally sets
// RefUnsafe, the one invariant exception spec.md §3 calls out.
func builtinLinkUnsafeRef(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetLinkRef(s, true); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinLinkAlternative(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetLinkAlternative(s); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinLinkNew(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	b, err := oneBool(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetLinkNew(b); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

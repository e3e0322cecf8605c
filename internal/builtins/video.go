package builtins

import (
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func videoTable() map[string]BuiltinFunc {
	table := srcBuiltins()
	table["loop"] = videoBoolSetter(func(d *directive.Directive, b bool) error { return d.SetVideoLoop(b) })
	table["muted"] = videoBoolSetter(func(d *directive.Directive, b bool) error { return d.SetVideoMuted(b) })
	table["autoplay"] = videoBoolSetter(func(d *directive.Directive, b bool) error { return d.SetVideoAutoplay(b) })
	table["controls"] = videoBoolSetter(func(d *directive.Directive, b bool) error { return d.SetVideoControls(b) })
	table["pip"] = videoBoolSetter(func(d *directive.Directive, b bool) error { return d.SetVideoPip(b) })
	return table
}

func videoBoolSetter(set func(d *directive.Directive, b bool) error) BuiltinFunc {
	return func(d *directive.Directive, args []interfaces.Value) interfaces.Value {
		b, err := oneBool(args)
		if err != nil {
			return interfaces.Err(err)
		}
		if err := set(d, b); err != nil {
			return interfaces.Err(err)
		}
		return d.Handle()
	}
}

// Package builtins implements the named, typed mutator tables every
// directive kind exposes. One Go file per kind (section, block, heading,
// text, katex, link, code, image, video) plus this file's common table
// mirrors the teacher's BuiltInDefinitions() catalogue shape, keyed by verb
// instead of shortcode name. Directive.Call is the two-level lookup this
// package drives: kind-specific table first, common table fallback, else
// "builtin not found in '<kind>'".
package builtins

import (
	"errors"
	"fmt"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// BuiltinFunc is the shape every table entry has: given the directive
// handle and the call's arguments, mutate the directive and return its
// handle, or return an err value.
type BuiltinFunc func(d *directive.Directive, args []interfaces.Value) interfaces.Value

func init() {
	directive.RegisterDispatcher(dispatch)
}

// dispatch is Directive.callFallback from spec.md §4.4: it iterates the
// active kind's builtin table first, then falls back to the common table,
// and returns "builtin not found in '<kind>'" if neither resolves the
// name.
func dispatch(d *directive.Directive, name string, args []interfaces.Value) interfaces.Value {
	if table, ok := kindTables[d.Kind()]; ok {
		if fn, ok := table[name]; ok {
			return fn(d, args)
		}
	}
	if fn, ok := commonTable[name]; ok {
		return fn(d, args)
	}
	return interfaces.Err(fmt.Errorf("builtin not found in '%s'", d.Kind()))
}

var kindTables = map[directive.Kind]map[string]BuiltinFunc{
	directive.KindSection: sectionTable(),
	directive.KindBlock:   blockTable(),
	directive.KindHeading: headingTable(),
	directive.KindText:    textTable(),
	directive.KindKatex:   katexTable(),
	directive.KindLink:    linkTable(),
	directive.KindCode:    codeTable(),
	directive.KindImage:   imageTable(),
	directive.KindVideo:   videoTable(),
}

var commonTable = map[string]BuiltinFunc{
	"id":    builtinID,
	"attrs": builtinAttrs,
	"title": builtinTitle,
	"data":  builtinData,
}

// --- common builtins --------------------------------------------------

var (
	errAttrsRequiresOneArg = errors.New("attrs requires at least one string argument")
	errAttrsMustBeStrings  = errors.New("attrs arguments must be strings")
	errDataArity           = errors.New("data requires a non-zero even number of string arguments")
	errDataMustBeStrings   = errors.New("data arguments must be strings")
)

func builtinID(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetID(s); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinTitle(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetTitle(s); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinAttrs(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	if len(args) == 0 {
		return interfaces.Err(errAttrsRequiresOneArg)
	}
	values := make([]string, len(args))
	for i, a := range args {
		if a.Tag != interfaces.ValueString {
			return interfaces.Err(errAttrsMustBeStrings)
		}
		values[i] = a.Str
	}
	if err := d.SetAttrs(values); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinData(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	if len(args) == 0 || len(args)%2 != 0 {
		return interfaces.Err(errDataArity)
	}
	values := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, val := args[i], args[i+1]
		if key.Tag != interfaces.ValueString || val.Tag != interfaces.ValueString {
			return interfaces.Err(errDataMustBeStrings)
		}
		if _, exists := values[key.Str]; exists {
			return interfaces.Err(fmt.Errorf("duplicate key: '%s'", key.Str))
		}
		values[key.Str] = val.Str
	}
	if err := d.SetData(values); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

// --- shared argument helpers --------------------------------------------

func oneString(args []interfaces.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected 1 %s argument", interfaces.ValueString)
	}
	if args[0].Tag != interfaces.ValueString {
		return "", fmt.Errorf("expected 1 %s argument", interfaces.ValueString)
	}
	return args[0].Str, nil
}

func oneBool(args []interfaces.Value) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("expected 1 %s argument", interfaces.ValueBool)
	}
	if args[0].Tag != interfaces.ValueBool {
		return false, fmt.Errorf("expected 1 %s argument", interfaces.ValueBool)
	}
	return args[0].Bool, nil
}

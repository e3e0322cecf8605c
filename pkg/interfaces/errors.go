package interfaces

import "errors"

// Sentinel errors for the two boundary rules FieldOf/CallOf centralize.
// errFieldAccessOnPrimitive is the literal message spec'd for field access
// on a string/int/bool value; errCallOnPrimitive is the analogous message
// for calling a method on one (the source spec is silent on this exact
// case, so the wording is chosen once here rather than varying call site
// to call site).
var (
	errFieldAccessOnPrimitive = errors.New("field access on primitive value")
	errCallOnPrimitive        = errors.New("call on primitive value")
)

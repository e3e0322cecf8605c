package interfaces

// ValueTag discriminates the sum type exchanged across the script/core
// boundary. Exactly one of the payload fields on Value is meaningful for a
// given tag.
type ValueTag uint8

const (
	ValueContent ValueTag = iota
	ValueDirective
	ValueString
	ValueInt
	ValueBool
	ValueError
)

// String names the tag, used only in test failure messages and internal
// error text ("field access on primitive value" callers don't need this,
// but table-driven tests comparing Value shapes do).
func (t ValueTag) String() string {
	switch t {
	case ValueContent:
		return "content"
	case ValueDirective:
		return "directive"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueBool:
		return "bool"
	case ValueError:
		return "err"
	default:
		return "unknown"
	}
}

// Value is the single concrete type the script evaluator and the directive
// object model exchange. Modeling the six-tag sum type from the field/call
// boundary as one struct with a Tag discriminant (rather than an
// interface-per-tag hierarchy) keeps that boundary down to one type instead
// of six.
type Value struct {
	Tag ValueTag

	Str  string
	Int  int64
	Bool bool
	Err  error
	Obj  Evaluable
}

// Str constructs a string value.
func Str(s string) Value { return Value{Tag: ValueString, Str: s} }

// Int constructs an integer value.
func Int(i int64) Value { return Value{Tag: ValueInt, Int: i} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{Tag: ValueBool, Bool: b} }

// Err constructs an error value carrying a fixed diagnostic message. err is
// a first-class value at this boundary, never a panic or a returned Go
// error.
func Err(err error) Value { return Value{Tag: ValueError, Err: err} }

// Obj constructs a content or directive handle value. The caller supplies
// the correct tag (ValueContent or ValueDirective); this boundary never
// infers it from the concrete type.
func Obj(tag ValueTag, obj Evaluable) Value { return Value{Tag: tag, Obj: obj} }

// IsErr reports whether the value is a terminal error.
func (v Value) IsErr() bool { return v.Tag == ValueError }

// Evaluable is the seam that Content and Directive implement so the script
// evaluator can drive field access and method calls without importing
// internal/directive.
type Evaluable interface {
	// Field resolves a named field to a Value. Implementations that carry
	// no named fields (every primitive) never satisfy this interface in the
	// first place; FieldOf below is the boundary helper for those.
	Field(name string) Value

	// Call invokes a named builtin with positional arguments, returning the
	// handle on success (so expressions chain) or an err value on failure.
	Call(name string, args []Value) Value
}

// Evaluator is the external collaborator this module never implements more
// than a reference version of: given a root value and an expression string,
// it drives field access and calls against that root and returns the final
// Value. Implementations must treat a returned err value as terminal and
// must never coerce between value tags.
type Evaluator interface {
	Eval(expr string, root Value) Value
}

// FieldOf centralizes the "field access on a primitive" boundary rule from
// the directive object model: Value itself has no Field method, because
// string/int/bool values never resolve a field access, and the directive
// object model must not duplicate this check at every call site.
func FieldOf(v Value, name string) Value {
	switch v.Tag {
	case ValueContent, ValueDirective:
		if v.Obj == nil {
			return Err(errFieldAccessOnPrimitive)
		}
		return v.Obj.Field(name)
	default:
		return Err(errFieldAccessOnPrimitive)
	}
}

// CallOf centralizes the "call on a primitive" boundary rule the same way
// FieldOf does for field access.
func CallOf(v Value, name string, args []Value) Value {
	switch v.Tag {
	case ValueContent, ValueDirective:
		if v.Obj == nil {
			return Err(errCallOnPrimitive)
		}
		return v.Obj.Call(name, args)
	default:
		return Err(errCallOnPrimitive)
	}
}

package directive

import (
	"errors"
	"fmt"
)

// Sentinel errors mirror content/errors.go's and widgets/errors.go's Err*
// variable-block convention: simple, package-local, no wrapping.
var (
	// ErrFieldAlreadySet is returned by every single-assignment field setter
	// (common or kind-specific) on its second call.
	ErrFieldAlreadySet = errors.New("field already set")

	// ErrFieldAccessOnDirective is the fixed message for Directive.Field,
	// which never resolves regardless of the requested name.
	ErrFieldAccessOnDirective = errors.New("field access on directive")

	// ErrCallOnContent is the fixed message for Content.Call: the content
	// root is only ever field-accessed by the nine kind names, never
	// called directly by a well-formed expression.
	ErrCallOnContent = errors.New("call on content")

	// ErrBuiltinDispatcherUnavailable fires if a Directive is called before
	// internal/builtins has registered itself via RegisterDispatcher. It
	// should never surface outside of a misconfigured test or embedder.
	ErrBuiltinDispatcherUnavailable = errors.New("builtin dispatcher not registered")
)

// ErrUnknownContentField reports a Content.Field lookup outside the nine
// kind namespaces. spec.md is silent on this exact case; the wording
// extends its error taxonomy by analogy (recorded in DESIGN.md).
func ErrUnknownContentField(name string) error {
	return fmt.Errorf("unknown field '%s' on content", name)
}

// ErrMandatoryFieldUnset reports the first unset mandatory field a kind
// declares, per the generic mandatory-field sweep in spec.md §4.5.
func ErrMandatoryFieldUnset(field string) error {
	return fmt.Errorf("mandatory field '%s' is unset", field)
}

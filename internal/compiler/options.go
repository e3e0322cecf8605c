package compiler

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/supermd/pkg/interfaces"
)

// CompileOptions configures a single Compile/CompileDocument call. Every
// call gets its own options value; nothing here is shared mutable state
// across concurrent compiles.
type CompileOptions struct {
	// DocumentPath identifies the document being compiled, for log
	// correlation and the auto-ID fallback's deterministic key. Optional.
	DocumentPath string

	// AutoIDs enables the anchor-ID supplement (internal/ids) for Section
	// and Heading directives that pass placement without an explicit id.
	AutoIDs bool

	// Strict promotes warning-severity diagnostics to compile failures:
	// Compile/CompileDocument return a non-nil error when true and the
	// diagnostic sink is non-empty, rather than only on error-severity
	// entries.
	Strict bool

	// Evaluator drives directive expressions. Required.
	Evaluator interfaces.Evaluator

	// Loggers resolves module-scoped loggers. Optional; a no-op provider
	// is used when nil.
	Loggers interfaces.LoggerProvider
}

// Validate reports missing required configuration before a compile starts.
// It never inspects document content — only the options value itself.
func (o CompileOptions) Validate() error {
	return validation.Errors{
		"evaluator": validation.Validate(o.Evaluator, validation.Required),
	}.Filter()
}

package logging

import (
	"context"
	"strings"

	"github.com/goliatone/supermd/pkg/interfaces"
)

const (
	rootModule     = "supermd"
	compilerModule = "supermd.compiler"
	builtinsModule = "supermd.builtins"
	scriptModule   = "supermd.script"
	idsModule      = "supermd.ids"
)

const (
	fieldDocumentPath  = "document_path"
	fieldCompileID     = "compile_id"
	fieldDirectiveKind = "directive_kind"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CompilerLogger returns the logger namespace reserved for the compiler driver.
func CompilerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, compilerModule)
}

// BuiltinsLogger returns the logger namespace reserved for builtin dispatch diagnostics.
func BuiltinsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, builtinsModule)
}

// ScriptLogger returns the logger namespace reserved for the reference script evaluator.
func ScriptLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scriptModule)
}

// IDsLogger returns the logger namespace reserved for the auto-ID supplement.
func IDsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, idsModule)
}

// WithCompileContext enriches the provided logger with the fields every
// compile-scoped log entry should carry: the document path and the
// correlation ID generated for the compile call. Empty values are ignored.
func WithCompileContext(logger interfaces.Logger, documentPath, compileID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(documentPath); trimmed != "" {
		fields[fieldDocumentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(compileID); trimmed != "" {
		fields[fieldCompileID] = trimmed
	}
	return WithFields(logger, fields)
}

// WithDirectiveKind enriches the provided logger with the directive kind a
// diagnostic or trace entry is about.
func WithDirectiveKind(logger interfaces.Logger, kind string) interfaces.Logger {
	if strings.TrimSpace(kind) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldDirectiveKind: kind})
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

package supermd

import (
	"github.com/yuin/goldmark/ast"

	_ "github.com/goliatone/supermd/internal/builtins"
	"github.com/goliatone/supermd/internal/compiler"
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/internal/script"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// CompileOptions exports the compiler's configuration contract.
type CompileOptions = compiler.CompileOptions

// CompileResult exports the compiler's per-call result contract.
type CompileResult = compiler.Result

// Kind exports the directive discriminant.
type Kind = directive.Kind

// Directive exports the directive record type, for callers that read
// back an attached directive from a compiled link node's
// "supermd:directive" attribute.
type Directive = directive.Directive

// Diagnostic exports the outbound diagnostic record.
type Diagnostic = interfaces.Diagnostic

// Evaluator exports the script evaluator contract CompileOptions.Evaluator
// is typed against.
type Evaluator = interfaces.Evaluator

const (
	KindSection = directive.KindSection
	KindBlock   = directive.KindBlock
	KindHeading = directive.KindHeading
	KindText    = directive.KindText
	KindKatex   = directive.KindKatex
	KindLink    = directive.KindLink
	KindCode    = directive.KindCode
	KindImage   = directive.KindImage
	KindVideo   = directive.KindVideo
)

// NewEvaluator returns the reference expression evaluator: an identifier
// naming a content field followed by zero or more chained `.method(args)`
// calls. Embedders may supply their own Evaluator on CompileOptions
// instead.
func NewEvaluator() Evaluator {
	return script.New()
}

// Compile parses source as Markdown and compiles every directive it
// finds, attaching a Directive to each directive link's node and
// collecting a Diagnostic for every expression or placement failure.
func Compile(source []byte, opts CompileOptions) (*CompileResult, error) {
	return compiler.Compile(source, opts)
}

// CompileDocument compiles directives against an already-parsed goldmark
// document, for callers that need to share one parse across compilation
// and some other use of the same tree (e.g. rendering).
func CompileDocument(doc ast.Node, source []byte, opts CompileOptions) (*CompileResult, error) {
	return compiler.CompileDocument(doc, source, opts)
}

// Package compiler is the driver spec.md §4.7 describes: it walks a parsed
// document, finds every directive-link, runs it through the script
// evaluator and the placement validator, and attaches the result to its
// node — collecting a Diagnostic for every expression or placement
// failure instead of stopping at the first one.
package compiler

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/supermd/internal/astview"
	_ "github.com/goliatone/supermd/internal/builtins"
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/internal/ids"
	"github.com/goliatone/supermd/internal/logging"
	"github.com/goliatone/supermd/internal/placement"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// directiveURLPrefix is the wire syntax spec.md §6 names: a directive
// expression lives in a link's destination, introduced by "$".
const directiveURLPrefix = "$"

// Result is everything one compile call produces: the annotated document
// (unchanged aside from attached directives and unlinked Katex children),
// every diagnostic collected along the way, and the correlation ID that
// was threaded through this compile's log entries.
type Result struct {
	Document    ast.Node
	Diagnostics []interfaces.Diagnostic
	CompileID   uuid.UUID
}

// Compile parses source with goldmark and runs CompileDocument against
// the result. It is the entry point for callers that don't already hold
// a parsed document.
func Compile(source []byte, opts CompileOptions) (*Result, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	return CompileDocument(doc, source, opts)
}

// CompileDocument runs the directive compiler against an already-parsed
// goldmark document. One Content-instance-per-directive-expression, one
// diagnostic sink, fully synchronous — spec.md §5's resource model,
// exactly as written; the only "arena" is whatever Go's garbage collector
// is already doing with this call's allocations.
func CompileDocument(doc ast.Node, source []byte, opts CompileOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid compile options")
	}

	compileID := uuid.New()
	logger := logging.WithCompileContext(logging.CompilerLogger(opts.Loggers), opts.DocumentPath, compileID.String())

	result := &Result{Document: doc, CompileID: compileID}
	s := newSink()
	seen := make(map[string]int)

	// The visitor never returns a non-nil error: every directive failure
	// becomes a Diagnostic instead, so ast.Walk itself cannot fail here.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		expr, ok := directiveExpression(link.Destination)
		if !ok {
			return ast.WalkContinue, nil
		}

		compileDirective(link, expr, source, opts, s, seen, logger)
		return ast.WalkContinue, nil
	})

	result.Diagnostics = s.diagnostics
	failed := s.hasErrors() || (opts.Strict && len(s.diagnostics) > 0)
	if failed {
		return result, fmt.Errorf("compile produced %d diagnostic(s)", len(s.diagnostics))
	}
	return result, nil
}

// directiveExpression reports whether dest is a directive URL and, if so,
// the expression with its leading "$" stripped.
func directiveExpression(dest []byte) (string, bool) {
	s := string(dest)
	if !strings.HasPrefix(s, directiveURLPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s, directiveURLPrefix), true
}

// compileDirective evaluates one directive link end to end: expression,
// placement, auto-ID, attach. Every failure becomes a Diagnostic on s;
// none of them stop the walk that is already in progress.
func compileDirective(link *ast.Link, expr string, source []byte, opts CompileOptions, s *sink, seen map[string]int, logger interfaces.Logger) {
	span := spanOf(link)
	content := directive.NewContent()
	root := interfaces.Obj(interfaces.ValueContent, content)

	value := opts.Evaluator.Eval(expr, root)
	if value.IsErr() {
		logger.Warn("directive.evaluate.failed", "expr", expr, "error", value.Err)
		s.Report(interfaces.Diagnostic{Span: span, Severity: interfaces.SeverityError, Message: value.Err.Error()})
		return
	}

	d, ok := value.Obj.(*directive.Directive)
	if !ok {
		s.Report(interfaces.Diagnostic{Span: span, Severity: interfaces.SeverityError, Message: "expression did not resolve to a directive"})
		return
	}

	view := astview.Wrap(link, source)
	if err := placement.Validate(view, d); err != nil {
		logger.Warn("directive.placement.failed", "kind", d.Kind().String(), "error", err)
		s.Report(interfaces.Diagnostic{Span: span, Severity: interfaces.SeverityError, Message: err.Error()})
		return
	}

	if opts.AutoIDs && (d.Kind() == directive.KindSection || d.Kind() == directive.KindHeading) {
		assignAutoID(d, view, opts, span, s, seen)
	}

	view.AttachDirective(d)
}

// assignAutoID fills an unset id on a Section/Heading directive that
// reached placement successfully. When the directive has no title and its
// node's literal text is blank, the generated id is reported as a
// warning, not an error — it never fails the compile on its own unless
// CompileOptions.Strict is set.
func assignAutoID(d *directive.Directive, view interfaces.Node, opts CompileOptions, span interfaces.Span, s *sink, seen map[string]int) {
	if d.ID() != nil {
		return
	}
	before := d.Title()
	source := ids.Source{Title: before, Literal: view.Literal()}
	if err := ids.Assign(d, source, opts.DocumentPath, span.Start, seen); err != nil {
		s.Report(interfaces.Diagnostic{Span: span, Severity: interfaces.SeverityWarning, Message: err.Error()})
		return
	}
	if source.Title == nil && strings.TrimSpace(source.Literal) == "" {
		s.Report(interfaces.Diagnostic{
			Span:     span,
			Severity: interfaces.SeverityWarning,
			Message:  fmt.Sprintf("auto-generated id '%s' has no readable source text to derive from", *d.ID()),
		})
	}
}

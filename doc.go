// Package supermd compiles the extended-Markdown directive syntax — a
// CommonMark/GFM link whose destination starts with "$" and carries a
// small expression chain — into an annotated goldmark AST: every such
// link gets a typed Directive attached to it, or a Diagnostic explaining
// why it didn't.
//
// Compile handles the common case: hand it Markdown source, get back the
// parsed-and-annotated document plus whatever diagnostics came up.
// CompileDocument is for callers that already hold a parsed goldmark
// document and want to share it with something else (a renderer, a
// linter) without parsing twice.
//
// The expression grammar, directive fields, and placement rules per kind
// are internal/directive, internal/builtins, and internal/placement's
// concern respectively; this package only wires them together and
// exposes the handful of types an embedder needs.
package supermd

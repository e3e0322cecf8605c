package compiler

import "github.com/goliatone/supermd/pkg/interfaces"

// sink is the slice-backed interfaces.DiagnosticSink used by every compile
// call. Reporting never stops a walk in progress — see Compile.
type sink struct {
	diagnostics []interfaces.Diagnostic
}

func newSink() *sink {
	return &sink{}
}

func (s *sink) Report(d interfaces.Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

func (s *sink) hasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == interfaces.SeverityError {
			return true
		}
	}
	return false
}

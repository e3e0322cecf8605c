package main

import (
	"fmt"
	"io"
)

// writeReport renders a DirectoryReport as a flat, greppable text report:
// one line per file, one indented line per diagnostic.
func writeReport(w io.Writer, report DirectoryReport) {
	for _, f := range report.Files {
		switch {
		case f.Err != nil:
			fmt.Fprintf(w, "%s: %v\n", f.Path, f.Err)
		case len(f.Diagnostics) == 0:
			fmt.Fprintf(w, "%s: ok\n", f.Path)
			continue
		default:
			fmt.Fprintf(w, "%s: %d diagnostic(s)\n", f.Path, len(f.Diagnostics))
		}
		for _, d := range f.Diagnostics {
			fmt.Fprintf(w, "  [%s] %d-%d: %s\n", d.Severity, d.Span.Start, d.Span.End, d.Message)
		}
	}
}

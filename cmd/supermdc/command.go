package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/supermd"
	"github.com/goliatone/supermd/internal/commands"
	"github.com/goliatone/supermd/internal/logging"
	"github.com/goliatone/supermd/pkg/interfaces"
)

const compileDirectoryOperation = "supermdc.compile_directory"

// ErrDirectoryRequired is returned by CompileDirectoryCommand.Validate when
// no root directory was supplied.
var ErrDirectoryRequired = errors.New("supermdc: directory is required")

// CompileDirectoryCommand is the go-command Message driving a batch compile
// of every ".smd" file found under Directory.
type CompileDirectoryCommand struct {
	Directory string
	Pattern   string
	AutoIDs   bool
	Strict    bool
}

// Type satisfies command.Message.
func (c CompileDirectoryCommand) Type() string { return "supermdc.compile_directory" }

// Validate satisfies command.Message.
func (c CompileDirectoryCommand) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return ErrDirectoryRequired
	}
	return nil
}

// FileReport is one ".smd" file's compile outcome.
type FileReport struct {
	Path        string
	Diagnostics []interfaces.Diagnostic
	Err         error
}

// DirectoryReport aggregates every file a CompileDirectoryCommand visited.
type DirectoryReport struct {
	Files []FileReport
}

// Failed reports whether any visited file produced an error-severity
// diagnostic or failed to compile outright.
func (r DirectoryReport) Failed() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
		for _, d := range f.Diagnostics {
			if d.Severity == interfaces.SeverityError {
				return true
			}
		}
	}
	return false
}

// CompileDirectoryHandler walks a directory and compiles every matching
// file through the shared command handler foundation.
type CompileDirectoryHandler struct {
	inner *commands.Handler[CompileDirectoryCommand]
	out   *DirectoryReport
}

// NewCompileDirectoryHandler builds a handler bound to logger. The report
// produced by a call to Execute is retrievable via Report afterwards.
func NewCompileDirectoryHandler(logger interfaces.Logger, opts ...commands.HandlerOption[CompileDirectoryCommand]) *CompileDirectoryHandler {
	h := &CompileDirectoryHandler{out: &DirectoryReport{}}

	exec := func(ctx context.Context, msg CompileDirectoryCommand) error {
		pattern := strings.TrimSpace(msg.Pattern)
		if pattern == "" {
			pattern = "*.smd"
		}

		paths, err := discoverFiles(msg.Directory, pattern)
		if err != nil {
			return fmt.Errorf("discover files: %w", err)
		}

		report := &DirectoryReport{Files: make([]FileReport, 0, len(paths))}
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			report.Files = append(report.Files, compileFile(path, msg, logger))
		}
		h.out = report
		return nil
	}

	handlerOpts := []commands.HandlerOption[CompileDirectoryCommand]{
		commands.WithLogger[CompileDirectoryCommand](logger),
		commands.WithOperation[CompileDirectoryCommand](compileDirectoryOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[CompileDirectoryCommand](logger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	h.inner = commands.NewHandler(exec, handlerOpts...)
	return h
}

// Execute satisfies command.Commander[CompileDirectoryCommand].
func (h *CompileDirectoryHandler) Execute(ctx context.Context, msg CompileDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Report returns the outcome of the most recent Execute call.
func (h *CompileDirectoryHandler) Report() DirectoryReport {
	return *h.out
}

// discoverFiles walks root collecting every regular file matching pattern,
// sorted for a deterministic report order.
func discoverFiles(root, pattern string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if matched {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// compileFile strips front matter from path's content and runs it through
// the compiler, turning any I/O or parse failure into a FileReport.Err
// rather than aborting the whole batch.
func compileFile(path string, msg CompileDirectoryCommand, logger interfaces.Logger) FileReport {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FileReport{Path: path, Err: fmt.Errorf("read file: %w", err)}
	}

	_, body, err := stripFrontMatter(raw)
	if err != nil {
		return FileReport{Path: path, Err: fmt.Errorf("strip front matter: %w", err)}
	}

	result, err := supermd.Compile(body, supermd.CompileOptions{
		DocumentPath: path,
		AutoIDs:      msg.AutoIDs,
		Strict:       msg.Strict,
		Evaluator:    supermd.NewEvaluator(),
		Loggers:      nil,
	})
	if err != nil && result == nil {
		return FileReport{Path: path, Err: err}
	}

	logging.WithFields(logger, map[string]any{
		"path":             path,
		"diagnostic_count": len(result.Diagnostics),
	}).Debug("supermdc.compile_file.completed")

	report := FileReport{Path: path, Diagnostics: result.Diagnostics}
	if err != nil && msg.Strict {
		report.Err = err
	}
	return report
}

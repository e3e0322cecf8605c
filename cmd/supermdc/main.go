package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/supermd/internal/commands"
	"github.com/goliatone/supermd/internal/logging/console"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("supermdc: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("supermdc", flag.ExitOnError)
	dir := fs.String("dir", ".", "Directory to walk for directive-bearing Markdown files")
	pattern := fs.String("pattern", "*.smd", "Glob pattern applied when discovering files")
	autoIDs := fs.Bool("auto-ids", false, "Synthesize anchor ids for Section/Heading directives left unset")
	strict := fs.Bool("strict", false, "Treat warning-severity diagnostics as compile failures")

	if err := fs.Parse(args); err != nil {
		return err
	}

	provider := console.NewProvider(console.Options{Writer: os.Stderr})
	logger := commands.CommandLogger(provider, "supermdc")

	handler := NewCompileDirectoryHandler(logger)
	cmd := CompileDirectoryCommand{
		Directory: *dir,
		Pattern:   *pattern,
		AutoIDs:   *autoIDs,
		Strict:    *strict,
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("compile directory: %w", err)
	}

	report := handler.Report()
	writeReport(os.Stdout, report)

	if report.Failed() {
		os.Exit(1)
	}
	return nil
}

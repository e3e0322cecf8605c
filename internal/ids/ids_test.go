package ids

import (
	"testing"

	"github.com/goliatone/supermd/internal/directive"
)

func TestAssignFromTitle(t *testing.T) {
	d := directive.NewContent().Directive(directive.KindHeading)
	title := "Getting Started!"
	err := Assign(d, Source{Title: &title}, "/docs/intro.md", 12, map[string]int{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID() == nil || *d.ID() != "getting-started" {
		t.Fatalf("expected slug 'getting-started', got %v", d.ID())
	}
}

func TestAssignFromLiteralWhenTitleUnset(t *testing.T) {
	d := directive.NewContent().Directive(directive.KindHeading)
	err := Assign(d, Source{Literal: "Welcome Home"}, "/docs/intro.md", 0, map[string]int{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID() == nil || *d.ID() != "welcome-home" {
		t.Fatalf("expected slug 'welcome-home', got %v", d.ID())
	}
}

func TestAssignNeverOverwritesExplicitID(t *testing.T) {
	d := directive.NewContent().Directive(directive.KindHeading)
	if err := d.SetID("intro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Assign(d, Source{Literal: "Welcome Home"}, "/docs/intro.md", 0, map[string]int{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *d.ID() != "intro" {
		t.Fatalf("expected explicit id preserved, got %v", *d.ID())
	}
}

func TestAssignDisambiguatesRepeatedSlugs(t *testing.T) {
	seen := map[string]int{}
	first := directive.NewContent().Directive(directive.KindHeading)
	second := directive.NewContent().Directive(directive.KindHeading)

	if err := Assign(first, Source{Literal: "Setup"}, "/docs/a.md", 0, seen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Assign(second, Source{Literal: "Setup"}, "/docs/a.md", 5, seen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first.ID() != "setup" {
		t.Fatalf("expected first id 'setup', got %v", *first.ID())
	}
	if *second.ID() != "setup-2" {
		t.Fatalf("expected second id 'setup-2', got %v", *second.ID())
	}
}

func TestAssignFallsBackWhenSlugEmpty(t *testing.T) {
	d := directive.NewContent().Directive(directive.KindSection)
	err := Assign(d, Source{Literal: "!!!"}, "/docs/a.md", 3, map[string]int{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID() == nil || *d.ID() == "" {
		t.Fatalf("expected non-empty fallback id")
	}
}

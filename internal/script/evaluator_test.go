package script

import (
	"testing"

	_ "github.com/goliatone/supermd/internal/builtins"
	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func rootValue() interfaces.Value {
	return interfaces.Obj(interfaces.ValueContent, directive.NewContent())
}

func TestEvalSimpleFieldAccess(t *testing.T) {
	v := New().Eval("section", rootValue())
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	if v.Tag != interfaces.ValueDirective {
		t.Fatalf("expected directive value, got %v", v.Tag)
	}
}

func TestEvalChainedCalls(t *testing.T) {
	v := New().Eval("heading.id('intro').attrs('warn', 'info')", rootValue())
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	d := v.Obj.(*directive.Directive)
	if d.ID() == nil || *d.ID() != "intro" {
		t.Fatalf("expected id 'intro', got %v", d.ID())
	}
	if len(d.Attrs()) != 2 || d.Attrs()[0] != "warn" {
		t.Fatalf("unexpected attrs: %v", d.Attrs())
	}
}

func TestEvalBoolArguments(t *testing.T) {
	v := New().Eval("video.loop(true).muted(false)", rootValue())
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	d := v.Obj.(*directive.Directive)
	if d.Video().Loop == nil || *d.Video().Loop != true {
		t.Fatalf("expected loop=true, got %v", d.Video().Loop)
	}
	if d.Video().Muted == nil || *d.Video().Muted != false {
		t.Fatalf("expected muted=false, got %v", d.Video().Muted)
	}
}

func TestEvalShortCircuitsOnFirstError(t *testing.T) {
	v := New().Eval("heading.id('a').id('b')", rootValue())
	if !v.IsErr() || v.Err.Error() != "field already set" {
		t.Fatalf("expected field already set, got %v", v)
	}
}

func TestEvalUnknownField(t *testing.T) {
	v := New().Eval("bogus", rootValue())
	if !v.IsErr() {
		t.Fatalf("expected error for unknown field")
	}
}

func TestEvalMalformedExpression(t *testing.T) {
	cases := []string{
		"",
		"heading.",
		"heading.id",
		"heading.id(",
		"heading.id('intro'",
		"heading.id('intro') extra",
	}
	for _, expr := range cases {
		v := New().Eval(expr, rootValue())
		if !v.IsErr() {
			t.Fatalf("expr %q: expected error", expr)
		}
	}
}

func TestEvalEscapedQuoteInStringLiteral(t *testing.T) {
	v := New().Eval(`heading.title('it\'s here')`, rootValue())
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	d := v.Obj.(*directive.Directive)
	if d.Title() == nil || *d.Title() != "it's here" {
		t.Fatalf("expected title \"it's here\", got %v", d.Title())
	}
}

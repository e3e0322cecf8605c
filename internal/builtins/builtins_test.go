package builtins

import (
	"testing"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/pkg/interfaces"
)

func newDirective(t *testing.T, kind directive.Kind) *directive.Directive {
	t.Helper()
	c := directive.NewContent()
	return c.Directive(kind)
}

func TestIDFieldAlreadySet(t *testing.T) {
	d := newDirective(t, directive.KindHeading)
	if v := d.Call("id", []interfaces.Value{interfaces.Str("a")}); v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	v := d.Call("id", []interfaces.Value{interfaces.Str("b")})
	if !v.IsErr() || v.Err.Error() != "field already set" {
		t.Fatalf("expected field already set, got %v", v)
	}
}

func TestAttrsContract(t *testing.T) {
	d := newDirective(t, directive.KindHeading)
	if v := d.Call("attrs", nil); !v.IsErr() {
		t.Fatalf("expected error for empty attrs call")
	}
	if v := d.Call("attrs", []interfaces.Value{interfaces.Str("a"), interfaces.Int(1)}); !v.IsErr() {
		t.Fatalf("expected error for non-string attrs arg")
	}
	if v := d.Call("attrs", []interfaces.Value{interfaces.Str("warn"), interfaces.Str("info")}); v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	if v := d.Call("attrs", []interfaces.Value{interfaces.Str("x")}); !v.IsErr() || v.Err.Error() != "field already set" {
		t.Fatalf("expected field already set, got %v", v)
	}
}

func TestDataArityTable(t *testing.T) {
	cases := []struct {
		name    string
		args    []interfaces.Value
		wantErr bool
		wantMsg string
	}{
		{"zero", nil, true, ""},
		{"one", []interfaces.Value{interfaces.Str("k")}, true, ""},
		{"two", []interfaces.Value{interfaces.Str("k"), interfaces.Str("v")}, false, ""},
		{"three", []interfaces.Value{interfaces.Str("k"), interfaces.Str("v"), interfaces.Str("k2")}, true, ""},
		{
			"four-with-duplicate",
			[]interfaces.Value{interfaces.Str("k"), interfaces.Str("v"), interfaces.Str("k"), interfaces.Str("v2")},
			true,
			"duplicate key: 'k'",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDirective(t, directive.KindHeading)
			v := d.Call("data", tc.args)
			if tc.wantErr != v.IsErr() {
				t.Fatalf("expected err=%v, got %v", tc.wantErr, v)
			}
			if tc.wantMsg != "" && v.Err.Error() != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, v.Err.Error())
			}
		})
	}
}

func TestURLBoundaryCases(t *testing.T) {
	cases := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"empty", "", true},
		{"no-scheme", "foo", true},
		{"ok", "https://example", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDirective(t, directive.KindLink)
			v := d.Call("url", []interfaces.Value{interfaces.Str(tc.arg)})
			if tc.wantErr != v.IsErr() {
				t.Fatalf("expected err=%v, got %v", tc.wantErr, v)
			}
		})
	}
}

func TestPageBoundaryCases(t *testing.T) {
	cases := []struct {
		name    string
		arg     string
		wantErr bool
		wantMsg string
	}{
		{"absolute", "/abs", true, "path must be relative"},
		{"dot", "a/./b", true, "'.' and '..' are not allowed in paths"},
		{"empty-component", "a//b", true, "empty component in path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDirective(t, directive.KindLink)
			v := d.Call("page", []interfaces.Value{interfaces.Str(tc.arg)})
			if !v.IsErr() || v.Err.Error() != tc.wantMsg {
				t.Fatalf("expected %q, got %v", tc.wantMsg, v)
			}
		})
	}

	d := newDirective(t, directive.KindLink)
	v := d.Call("page", []interfaces.Value{interfaces.Str("a/b/")})
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	if d.Src().Ref != "a/b" {
		t.Fatalf("expected trailing slash stripped, got %q", d.Src().Ref)
	}
}

func TestSrcSettersAreMutuallyExclusiveRegardlessOfOrdering(t *testing.T) {
	builtinsToTry := []string{"url", "asset", "siteAsset", "buildAsset", "page", "sub", "sibling"}
	for _, first := range builtinsToTry {
		for _, second := range builtinsToTry {
			if first == second {
				continue
			}
			d := newDirective(t, directive.KindLink)
			if v := callSrcBuiltin(d, first); v.IsErr() {
				t.Fatalf("%s: unexpected error on first call: %v", first, v.Err)
			}
			v := callSrcBuiltin(d, second)
			if !v.IsErr() || v.Err.Error() != "field already set" {
				t.Fatalf("%s then %s: expected field already set, got %v", first, second, v)
			}
		}
	}
}

func callSrcBuiltin(d *directive.Directive, name string) interfaces.Value {
	switch name {
	case "url":
		return d.Call(name, []interfaces.Value{interfaces.Str("https://example.com")})
	case "buildAsset":
		return d.Call(name, []interfaces.Value{interfaces.Str("anything")})
	default:
		return d.Call(name, []interfaces.Value{interfaces.Str("a/b")})
	}
}

func TestBuiltinNotFoundInKind(t *testing.T) {
	d := newDirective(t, directive.KindHeading)
	v := d.Call("language", []interfaces.Value{interfaces.Str("go")})
	if !v.IsErr() || v.Err.Error() != "builtin not found in 'heading'" {
		t.Fatalf("expected builtin-not-found message, got %v", v)
	}
}

func TestLinkUnsafeRefSetsRefUnsafeFlag(t *testing.T) {
	d := newDirective(t, directive.KindLink)
	if v := d.Call("unsafeRef", []interfaces.Value{interfaces.Str("sec-a")}); v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	if !d.Link().RefUnsafe {
		t.Fatalf("expected RefUnsafe to be true")
	}
}

func TestKindSpecificScalarSetterArityMismatch(t *testing.T) {
	d := newDirective(t, directive.KindVideo)
	v := d.Call("loop", nil)
	if !v.IsErr() || v.Err.Error() != "expected 1 bool argument" {
		t.Fatalf("expected arity error, got %v", v)
	}
}

func TestChainedCallsMutateSameInstance(t *testing.T) {
	c := directive.NewContent()
	root := c.Directive(directive.KindHeading).Handle()
	v := interfaces.CallOf(root, "id", []interfaces.Value{interfaces.Str("h")})
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	v = interfaces.CallOf(v, "attrs", []interfaces.Value{interfaces.Str("warn")})
	if v.IsErr() {
		t.Fatalf("unexpected error: %v", v.Err)
	}
	d := v.Obj.(*directive.Directive)
	if d != c.Directive(directive.KindHeading) {
		t.Fatalf("expected chained calls to mutate the same instance")
	}
}

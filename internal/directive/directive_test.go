package directive

import "testing"

func TestDirectiveFieldAlwaysFails(t *testing.T) {
	d := newDirective(KindHeading)
	v := d.Field("anything")
	if !v.IsErr() || v.Err != ErrFieldAccessOnDirective {
		t.Fatalf("expected ErrFieldAccessOnDirective, got %v", v)
	}
}

func TestSetIDSingleAssignment(t *testing.T) {
	d := newDirective(KindHeading)
	if err := d.SetID("intro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.ID(); got == nil || *got != "intro" {
		t.Fatalf("expected id 'intro', got %v", got)
	}
	if err := d.SetID("other"); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
	if got := d.ID(); got == nil || *got != "intro" {
		t.Fatalf("first value should be preserved, got %v", got)
	}
}

func TestSetAttrsSingleAssignment(t *testing.T) {
	d := newDirective(KindHeading)
	if err := d.SetAttrs([]string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetAttrs([]string{"c"}); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
	if got := d.Attrs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected attrs: %v", got)
	}
}

func TestSetTitleSingleAssignment(t *testing.T) {
	d := newDirective(KindHeading)
	if err := d.SetTitle("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetTitle("second"); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
}

func TestSetDataSingleAssignment(t *testing.T) {
	d := newDirective(KindHeading)
	if err := d.SetData(map[string]string{"k": "v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetData(map[string]string{"k2": "v2"}); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
}

func TestSetSrcMutualExclusion(t *testing.T) {
	d := newDirective(KindImage)
	if err := d.SetSrc(NewPageAssetSrc("pic.png")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetSrc(NewURLSrc("https://example.com")); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
	if d.Src().Kind != SrcPageAsset {
		t.Fatalf("expected first src to be preserved, got %v", d.Src().Kind)
	}
}

func TestLinkRefAndUnsafeRefShareOneField(t *testing.T) {
	d := newDirective(KindLink)
	if err := d.SetLinkRef("sec-a", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Link().RefUnsafe; got {
		t.Fatalf("expected RefUnsafe false for safe ref")
	}
	if err := d.SetLinkRef("sec-b", true); err != ErrFieldAlreadySet {
		t.Fatalf("expected ErrFieldAlreadySet, got %v", err)
	}
}

func TestCallWithoutRegisteredDispatcherFails(t *testing.T) {
	dispatcher = nil
	d := newDirective(KindHeading)
	v := d.Call("id", nil)
	if !v.IsErr() || v.Err != ErrBuiltinDispatcherUnavailable {
		t.Fatalf("expected ErrBuiltinDispatcherUnavailable, got %v", v)
	}
}

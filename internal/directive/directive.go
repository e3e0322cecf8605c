package directive

import (
	"github.com/goliatone/supermd/pkg/interfaces"
)

// BuiltinDispatcher is the function internal/builtins registers with this
// package at init time so Directive.Call can reach the two-level builtin
// lookup without internal/directive importing internal/builtins (which
// itself must import internal/directive for the Directive type and its
// setters). The pattern mirrors how the standard library's image and
// database/sql packages let a leaf package register itself with a core
// package instead of the core importing every possible leaf.
type BuiltinDispatcher func(d *Directive, name string, args []interfaces.Value) interfaces.Value

var dispatcher BuiltinDispatcher

// RegisterDispatcher installs the builtin dispatch function. internal/builtins
// calls this exactly once, from its own init().
func RegisterDispatcher(fn BuiltinDispatcher) {
	dispatcher = fn
}

// Directive is the typed directive record: four common attributes, a
// discriminant, and a kind-specific body allocated only for the active
// kind. Once kind is picked on construction it never changes; once any
// optional common field is set it cannot be reassigned.
type Directive struct {
	kind Kind

	id    *string
	attrs []string
	title *string
	data  map[string]string

	// src is shared by the four kinds that need one (Image, Video, Code,
	// Link); nil until the first src-setting builtin runs.
	src *Src

	section *SectionBody
	image   *ImageBody
	video   *VideoBody
	code    *CodeBody
	link    *LinkBody
	katex   *KatexBody
}

// newDirective allocates a Directive for kind with only the kind-specific
// body it needs.
func newDirective(kind Kind) *Directive {
	d := &Directive{kind: kind}
	switch kind {
	case KindSection:
		d.section = &SectionBody{}
	case KindImage:
		d.image = &ImageBody{}
	case KindVideo:
		d.video = &VideoBody{}
	case KindCode:
		d.code = &CodeBody{}
	case KindLink:
		d.link = &LinkBody{}
	case KindKatex:
		d.katex = &KatexBody{}
	}
	return d
}

// Kind reports the directive's discriminant.
func (d *Directive) Kind() Kind { return d.kind }

// Field satisfies interfaces.Evaluable. Field access on a directive always
// fails: builtins mutate directives, they never expose their fields as
// nested values.
func (d *Directive) Field(string) interfaces.Value {
	return interfaces.Err(ErrFieldAccessOnDirective)
}

// Call satisfies interfaces.Evaluable by delegating to the registered
// builtin dispatcher. This is "Directive.callFallback" from spec.md §4.4:
// the sole way the script evaluator reaches kind-specific operations,
// since to the script the handle's static type is "directive", not its
// kind.
func (d *Directive) Call(name string, args []interfaces.Value) interfaces.Value {
	if dispatcher == nil {
		return interfaces.Err(ErrBuiltinDispatcherUnavailable)
	}
	return dispatcher(d, name, args)
}

// Handle returns d as the Value a successful builtin call chains from.
func (d *Directive) Handle() interfaces.Value {
	return interfaces.Obj(interfaces.ValueDirective, d)
}

// --- common field accessors -------------------------------------------------

func (d *Directive) ID() *string { return d.id }

// SetID assigns id; fails if already assigned.
func (d *Directive) SetID(s string) error {
	if d.id != nil {
		return ErrFieldAlreadySet
	}
	d.id = &s
	return nil
}

func (d *Directive) Attrs() []string { return d.attrs }

func (d *Directive) AttrsSet() bool { return d.attrs != nil }

// SetAttrs assigns the full attrs sequence; fails if already assigned.
func (d *Directive) SetAttrs(values []string) error {
	if d.attrs != nil {
		return ErrFieldAlreadySet
	}
	d.attrs = append([]string(nil), values...)
	return nil
}

func (d *Directive) Title() *string { return d.title }

// SetTitle assigns title; identical contract to SetID.
func (d *Directive) SetTitle(s string) error {
	if d.title != nil {
		return ErrFieldAlreadySet
	}
	d.title = &s
	return nil
}

func (d *Directive) Data() map[string]string { return d.data }

func (d *Directive) DataSet() bool { return d.data != nil }

// SetData assigns the full data mapping; fails if already assigned. The
// caller (internal/builtins) is responsible for detecting duplicate keys
// within a single call before reaching here.
func (d *Directive) SetData(values map[string]string) error {
	if d.data != nil {
		return ErrFieldAlreadySet
	}
	cloned := make(map[string]string, len(values))
	for k, v := range values {
		cloned[k] = v
	}
	d.data = cloned
	return nil
}

// --- src ---------------------------------------------------------------

func (d *Directive) Src() *Src { return d.src }

func (d *Directive) SrcSet() bool { return d.src != nil }

// SetSrc assigns src; fails if already assigned. Every src-setting
// builtin (url, asset, siteAsset, buildAsset, page, sub, sibling) and the
// Link placement validator's self_page synthesis go through this one
// method, which is what makes the seven builtins mutually exclusive.
func (d *Directive) SetSrc(src *Src) error {
	if d.src != nil {
		return ErrFieldAlreadySet
	}
	d.src = src
	return nil
}

// --- kind bodies ---------------------------------------------------------

func (d *Directive) Section() *SectionBody { return d.section }
func (d *Directive) Image() *ImageBody     { return d.image }
func (d *Directive) Video() *VideoBody     { return d.video }
func (d *Directive) Code() *CodeBody       { return d.code }
func (d *Directive) Link() *LinkBody       { return d.link }
func (d *Directive) Katex() *KatexBody     { return d.katex }

// SetKatexFormula populates Katex.Formula. Only the placement validator
// calls this, after unlinking the child code node; no builtin ever does.
func (d *Directive) SetKatexFormula(formula string) {
	if d.katex == nil {
		return
	}
	d.katex.Formula = formula
	d.katex.FormulaSet = true
}

// --- Image setters ---------------------------------------------------------

func (d *Directive) SetImageAlt(s string) error {
	if d.image.Alt != nil {
		return ErrFieldAlreadySet
	}
	d.image.Alt = &s
	return nil
}

func (d *Directive) SetImageLinked(b bool) error {
	if d.image.Linked != nil {
		return ErrFieldAlreadySet
	}
	d.image.Linked = &b
	return nil
}

// --- Video setters -----------------------------------------------------

func (d *Directive) SetVideoLoop(b bool) error {
	if d.video.Loop != nil {
		return ErrFieldAlreadySet
	}
	d.video.Loop = &b
	return nil
}

func (d *Directive) SetVideoMuted(b bool) error {
	if d.video.Muted != nil {
		return ErrFieldAlreadySet
	}
	d.video.Muted = &b
	return nil
}

func (d *Directive) SetVideoAutoplay(b bool) error {
	if d.video.Autoplay != nil {
		return ErrFieldAlreadySet
	}
	d.video.Autoplay = &b
	return nil
}

func (d *Directive) SetVideoControls(b bool) error {
	if d.video.Controls != nil {
		return ErrFieldAlreadySet
	}
	d.video.Controls = &b
	return nil
}

func (d *Directive) SetVideoPip(b bool) error {
	if d.video.Pip != nil {
		return ErrFieldAlreadySet
	}
	d.video.Pip = &b
	return nil
}

// --- Code setters ------------------------------------------------------

func (d *Directive) SetCodeLanguage(s string) error {
	if d.code.Language != nil {
		return ErrFieldAlreadySet
	}
	d.code.Language = &s
	return nil
}

// --- Link setters ------------------------------------------------------

func (d *Directive) SetLinkAlternative(s string) error {
	if d.link.Alternative != nil {
		return ErrFieldAlreadySet
	}
	d.link.Alternative = &s
	return nil
}

// SetLinkRef assigns ref; unsafe additionally sets RefUnsafe. ref and
// unsafeRef share the same field, so only one of them may be called once
// regardless of which is used.
func (d *Directive) SetLinkRef(s string, unsafe bool) error {
	if d.link.Ref != nil {
		return ErrFieldAlreadySet
	}
	d.link.Ref = &s
	d.link.RefUnsafe = unsafe
	return nil
}

func (d *Directive) SetLinkNew(b bool) error {
	if d.link.New != nil {
		return ErrFieldAlreadySet
	}
	d.link.New = &b
	return nil
}

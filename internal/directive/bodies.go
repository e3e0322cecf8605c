package directive

// SectionBody carries Section's one kind-specific field. End has no public
// builtin today (spec.md's "Open Question" — the field is referenced by
// placement validation but the source never exposed a setter for it); the
// field and the validator rule stay in place for forward compatibility,
// but nothing in this module ever sets it to true.
type SectionBody struct {
	End *bool
}

// ImageBody carries Image's kind-specific fields. SizeW/SizeH mirror
// spec.md's `size: {w:int, h:int}` field; no builtin in spec.md §4.4 sets
// it, so it stays nil here, exactly like Src.Resolved, awaiting a pass
// outside this module.
type ImageBody struct {
	Alt    *string
	Linked *bool
	SizeW  *int
	SizeH  *int
}

// VideoBody carries Video's five boolean flags, each a single-assignment
// field.
type VideoBody struct {
	Loop     *bool
	Muted    *bool
	Autoplay *bool
	Controls *bool
	Pip      *bool
}

// CodeBody carries Code's one kind-specific field beyond Src.
type CodeBody struct {
	Language *string
}

// LinkBody carries Link's kind-specific fields. RefUnsafe is the one
// invariant exception called out in spec.md §3: it is set as a side effect
// of choosing unsafeRef over ref, not independently.
type LinkBody struct {
	Alternative *string
	Ref         *string
	RefUnsafe   bool
	New         *bool
}

// KatexBody carries Katex's one field. Formula is populated exclusively by
// the placement validator from a child code literal; no builtin ever
// writes it.
type KatexBody struct {
	Formula    string
	FormulaSet bool
}

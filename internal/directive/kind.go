package directive

// Kind discriminates a Directive. Once picked on a Directive it never
// changes.
type Kind uint8

const (
	KindSection Kind = iota
	KindBlock
	KindHeading
	KindText
	KindKatex
	KindLink
	KindCode
	KindImage
	KindVideo
)

// String renders the field/content namespace name for the kind, used both
// by Content.Field resolution and by error messages that name the active
// kind (e.g. "builtin not found in '<kind>'").
func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindBlock:
		return "block"
	case KindHeading:
		return "heading"
	case KindText:
		return "text"
	case KindKatex:
		return "katex"
	case KindLink:
		return "link"
	case KindCode:
		return "code"
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Kinds lists every kind in the fixed namespace order Content exposes them.
func Kinds() []Kind {
	return []Kind{
		KindSection, KindBlock, KindHeading, KindText, KindKatex,
		KindLink, KindCode, KindImage, KindVideo,
	}
}

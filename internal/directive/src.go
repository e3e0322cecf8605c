package directive

// SrcKind discriminates the reference-target sum type. Once a Directive's
// Src is set it is never replaced; the seven src-setting builtins
// (url, asset, siteAsset, buildAsset, page, sub, sibling) are mutually
// exclusive on a single directive.
type SrcKind uint8

const (
	SrcURL SrcKind = iota
	SrcSelfPage
	SrcPage
	SrcPageAsset
	SrcSiteAsset
	SrcBuildAsset
)

// String names the src kind.
func (k SrcKind) String() string {
	switch k {
	case SrcURL:
		return "url"
	case SrcSelfPage:
		return "self_page"
	case SrcPage:
		return "page"
	case SrcPageAsset:
		return "page_asset"
	case SrcSiteAsset:
		return "site_asset"
	case SrcBuildAsset:
		return "build_asset"
	default:
		return "unknown"
	}
}

// PageRefKind distinguishes the three page-reference builtins; they differ
// only in this discriminator.
type PageRefKind uint8

const (
	PageAbsolute PageRefKind = iota
	PageSub
	PageSibling
)

// Src is the tagged union describing where a directive's source points.
// Only the fields relevant to Kind are meaningful; Resolved is a
// placeholder this module never reads, filled in by a pass outside the
// core (the downstream compiler that turns refs into final URLs).
type Src struct {
	Kind SrcKind

	// URL holds the absolute external URL for SrcURL.
	URL string

	// SelfAlt holds the optional alt text synthesized by Link validation
	// for SrcSelfPage; nil when not supplied.
	SelfAlt *string

	// PageKind, Ref, and Locale describe SrcPage; Ref alone describes
	// SrcPageAsset, SrcSiteAsset, and SrcBuildAsset.
	PageKind PageRefKind
	Ref      string
	Locale   *string

	// Resolved is never populated or read by this module.
	Resolved any
}

// NewURLSrc constructs a Src pointing at an absolute external URL.
func NewURLSrc(url string) *Src {
	return &Src{Kind: SrcURL, URL: url}
}

// NewSelfPageSrc constructs a Src implicitly referencing the current page.
// It is only ever synthesized by Link placement validation, never by a
// builtin directly.
func NewSelfPageSrc(alt *string) *Src {
	return &Src{Kind: SrcSelfPage, SelfAlt: alt}
}

// NewPageSrc constructs a Src referencing another document.
func NewPageSrc(kind PageRefKind, ref string, locale *string) *Src {
	return &Src{Kind: SrcPage, PageKind: kind, Ref: ref, Locale: locale}
}

// NewPageAssetSrc constructs a Src referencing an asset in the current
// page's sibling directory.
func NewPageAssetSrc(ref string) *Src {
	return &Src{Kind: SrcPageAsset, Ref: ref}
}

// NewSiteAssetSrc constructs a Src referencing an asset in the global asset
// tree.
func NewSiteAssetSrc(ref string) *Src {
	return &Src{Kind: SrcSiteAsset, Ref: ref}
}

// NewBuildAssetSrc constructs a Src referencing a build-tool-provided
// identifier. Unlike the other asset kinds, buildAsset skips path
// validation entirely.
func NewBuildAssetSrc(ref string) *Src {
	return &Src{Kind: SrcBuildAsset, Ref: ref}
}

package builtins

import (
	"fmt"
	"net/url"

	"github.com/goliatone/supermd/internal/directive"
	"github.com/goliatone/supermd/internal/pathvalidate"
	"github.com/goliatone/supermd/pkg/interfaces"
)

// errURLMissingScheme is returned by url() for any string that parses
// without a non-empty scheme, including the empty string itself — an
// empty path has no scheme either, so it takes the same branch as a bare
// word like "foo".
var errURLMissingScheme = fmt.Errorf("URLs must specify a scheme; use one of the asset methods to reference a path in this project")

// srcBuiltins returns the seven src-setting builtins shared by Image,
// Video, Code, and Link — the only four kinds whose Directive carries a
// Src. The first call from this set on a directive fixes src; every
// subsequent call, regardless of which of the seven it is, fails with
// "field already set".
func srcBuiltins() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{
		"url":        builtinURL,
		"asset":      builtinAsset,
		"siteAsset":  builtinSiteAsset,
		"buildAsset": builtinBuildAsset,
		"page":       builtinPage,
		"sub":        builtinSub,
		"sibling":    builtinSibling,
	}
}

func builtinURL(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	parsed, parseErr := url.Parse(s)
	if parseErr != nil {
		return interfaces.Err(parseErr)
	}
	if parsed.Scheme == "" {
		return interfaces.Err(errURLMissingScheme)
	}
	if err := d.SetSrc(directive.NewURLSrc(s)); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinAsset(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if verr := pathvalidate.PathValidationError(s); verr != nil {
		return interfaces.Err(verr)
	}
	if err := d.SetSrc(directive.NewPageAssetSrc(pathvalidate.StripTrailingSlash(s))); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinSiteAsset(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if verr := pathvalidate.PathValidationError(s); verr != nil {
		return interfaces.Err(verr)
	}
	if err := d.SetSrc(directive.NewSiteAssetSrc(pathvalidate.StripTrailingSlash(s))); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

// builtinBuildAsset skips path validation entirely — its argument is a
// build-tool-provided identifier, not a content-tree path.
func builtinBuildAsset(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	s, err := oneString(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if err := d.SetSrc(directive.NewBuildAssetSrc(s)); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func builtinPage(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	return setPageSrc(d, args, directive.PageAbsolute)
}

func builtinSub(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	return setPageSrc(d, args, directive.PageSub)
}

func builtinSibling(d *directive.Directive, args []interfaces.Value) interfaces.Value {
	return setPageSrc(d, args, directive.PageSibling)
}

func setPageSrc(d *directive.Directive, args []interfaces.Value, kind directive.PageRefKind) interfaces.Value {
	ref, locale, err := refAndOptionalLocale(args)
	if err != nil {
		return interfaces.Err(err)
	}
	if verr := pathvalidate.PathValidationError(ref); verr != nil {
		return interfaces.Err(verr)
	}
	ref = pathvalidate.StripTrailingSlash(ref)
	if err := d.SetSrc(directive.NewPageSrc(kind, ref, locale)); err != nil {
		return interfaces.Err(err)
	}
	return d.Handle()
}

func refAndOptionalLocale(args []interfaces.Value) (string, *string, error) {
	switch len(args) {
	case 1:
		if args[0].Tag != interfaces.ValueString {
			return "", nil, fmt.Errorf("expected 1 or 2 %s arguments", interfaces.ValueString)
		}
		return args[0].Str, nil, nil
	case 2:
		if args[0].Tag != interfaces.ValueString || args[1].Tag != interfaces.ValueString {
			return "", nil, fmt.Errorf("expected 1 or 2 %s arguments", interfaces.ValueString)
		}
		locale := args[1].Str
		return args[0].Str, &locale, nil
	default:
		return "", nil, fmt.Errorf("expected 1 or 2 %s arguments", interfaces.ValueString)
	}
}

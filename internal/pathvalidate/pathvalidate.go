// Package pathvalidate implements the one predicate every asset/page
// builtin shares: a path is either relative, clean, and slash-separated or
// it is rejected with a fixed message. It is the single source of truth
// shared with the downstream HTML compiler — same string in, same verdict
// out, in both places — which is exactly why it stays stdlib-only. See
// DESIGN.md for why no ecosystem path/URL library is a good fit for a
// byte-exact, cross-language-stable validator: every general-purpose path
// library normalizes (resolves "..", cleans redundant slashes) rather than
// rejecting, which is the opposite of what a stable diagnostic contract
// needs.
package pathvalidate

import (
	"errors"
	"strings"
)

// PathValidationError returns the first violated rule for p, or nil if p
// is an acceptable relative path. Rules are evaluated in the fixed order
// below; only the first violation is reported.
func PathValidationError(p string) error {
	if strings.TrimSpace(p) != p {
		return errRemoveWhitespace
	}
	if p == "" {
		return errPathEmpty
	}
	if strings.HasPrefix(p, "/") {
		return errPathMustBeRelative
	}
	if strings.Contains(p, "\\") {
		return errUseForwardSlash
	}

	components := strings.Split(p, "/")

	for _, c := range components {
		if c == "." || c == ".." {
			return errDotComponentsNotAllowed
		}
	}

	for i, c := range components {
		if c == "" && i != len(components)-1 {
			return errEmptyComponent
		}
	}

	return nil
}

// StripTrailingSlash removes every trailing '/' from p. It is idempotent:
// StripTrailingSlash(StripTrailingSlash(p)) == StripTrailingSlash(p).
func StripTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

var (
	errRemoveWhitespace        = errors.New("remove whitespace surrounding path")
	errPathEmpty               = errors.New("path is empty")
	errPathMustBeRelative      = errors.New("path must be relative")
	errUseForwardSlash         = errors.New("use '/' instead of '\\' in paths")
	errDotComponentsNotAllowed = errors.New("'.' and '..' are not allowed in paths")
	errEmptyComponent          = errors.New("empty component in path")
)

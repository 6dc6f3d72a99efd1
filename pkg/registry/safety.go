// This file provides the content-safety scan applied to free-text fields in
// themes and templates.
//
// The scan is a blunt, case-insensitive denylist: it matches known-dangerous
// substrings (<script, inline event handler names, javascript: URIs) and
// CSS-specific injection vectors (url(), expression(), @import). It does not
// parse CSS or HTML, has no contextual understanding, and is trivially
// bypassable; it exists only to catch obvious injection attempts before a
// registry entry ships.

package registry

import "regexp"

var (
	cssForbiddenRe = regexp.MustCompile(`(?i)url\s*\(|expression\s*\(|javascript:|@import`)
	xssForbiddenRe = regexp.MustCompile(`(?i)<script|onclick|onerror|onload|javascript:`)
)

// ContainsForbiddenCSS reports whether the value matches a CSS injection
// vector (url(), expression(), javascript: URI, @import).
func ContainsForbiddenCSS(value string) bool {
	return cssForbiddenRe.MatchString(value)
}

// ContainsXSS reports whether the value matches a script-injection vector
// (<script, inline event handler attribute, javascript: URI).
func ContainsXSS(value string) bool {
	return xssForbiddenRe.MatchString(value)
}

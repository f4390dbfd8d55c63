// Package pathutil provides URL path normalization for metric labels.
// Paths with embedded identifiers are collapsed to templates so the
// per-path label cardinality stays bounded.
package pathutil

import "regexp"

// pathRule maps a concrete path pattern to its template form.
type pathRule struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathRules lists the known parameterized routes. Content IDs are normalized
// decimal strings, so \d+ is sufficient.
var pathRules = []pathRule{
	{Pattern: regexp.MustCompile(`^/policies/\d+$`), Template: "/policies/:contentId"},
	{Pattern: regexp.MustCompile(`^/bookmarks/\d+$`), Template: "/bookmarks/:contentId"},
}

// NormalizePath converts a request path to its template form for use as a
// metric label. Unknown paths are returned unchanged.
//
// Examples:
//
//	NormalizePath("/policies/125266")   // "/policies/:contentId"
//	NormalizePath("/bookmarks/125266") // "/bookmarks/:contentId"
//	NormalizePath("/places")           // "/places"
func NormalizePath(path string) string {
	for _, rule := range pathRules {
		if rule.Pattern.MatchString(path) {
			return rule.Template
		}
	}
	return path
}

package catalog

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesAny reports whether the product's category name or slug matches
// any of the given glob patterns. Matching is case-insensitive. Invalid
// patterns never match.
func (p Product) MatchesAny(patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.ToLower(pattern)
		if ok, err := doublestar.Match(pattern, strings.ToLower(p.Category.Name)); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, strings.ToLower(p.Slug)); err == nil && ok {
			return true
		}
	}
	return false
}

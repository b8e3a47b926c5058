package normalize

import (
	"regexp"
	"strings"
)

var tagExpr = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes markup tags from raw text in a single non-greedy pass.
// Entities are left untouched and whitespace is preserved, so the result is
// stable under repeated application.
func StripMarkup(raw string) string {
	return tagExpr.ReplaceAllString(raw, "")
}

// CleanText strips markup and additionally collapses whitespace runs into
// single spaces. Used for display, not required before scoring.
func CleanText(raw string) string {
	return strings.Join(strings.Fields(StripMarkup(raw)), " ")
}

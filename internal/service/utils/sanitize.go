package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeText strips any HTML markup from user-supplied text before it is
// persisted. The unescape pass restores plain-text characters ("&", "<")
// that the policy entity-encodes, so plain text round-trips unchanged.
func SanitizeText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

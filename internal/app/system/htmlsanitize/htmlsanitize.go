// Package htmlsanitize strips markup from user-entered text before it is
// stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag; script and style contents are dropped entirely.
var strict = bluemonday.StrictPolicy()

// PlainText returns s with all HTML removed, entities decoded and
// surrounding whitespace trimmed. Templates escape on output, so the stored
// value is plain text.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

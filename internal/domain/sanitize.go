package domain

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy() //nolint:gochecknoglobals

// cleanText strips any markup from free form input before it leaves the
// portal. The result is plain text, templates escape it when rendering.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

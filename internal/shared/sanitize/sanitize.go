// Package sanitize strips markup from user-generated text before it is
// stored and later rendered in the web UI.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every HTML tag and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Package htmlsanitize strips HTML from user-supplied text before it is
// logged or forwarded. Contact form fields are plain text; any markup in
// them is hostile or accidental, so everything is removed rather than
// selectively allowed.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy strips all elements and attributes.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Field cleans one plain-text form field: tags are removed, the entities
// bluemonday escapes on the way out are decoded back to their literal
// characters, and surrounding whitespace is trimmed. The result is safe to
// log and to embed in notification email bodies as text.
func Field(s string) string {
	if s == "" {
		return ""
	}
	cleaned := getPolicy().Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// ContainsHTML reports whether s appears to contain markup. Used to flag
// suspicious submissions in logs; sanitization happens regardless.
func ContainsHTML(s string) bool {
	return strings.Contains(s, "<") && strings.Contains(s, ">")
}

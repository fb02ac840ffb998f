// Package schema defines the validation schemas for the site content
// document and for contact form submissions.
//
// Validation is all-or-nothing with no coercion: a numeric string is never
// silently converted to a number, and failures enumerate every offending
// field path (goskema's collect mode) so a hand-edited data.json can be
// fixed in one pass. Unknown keys are stripped, not rejected.
package schema

import (
	"net/mail"
	"strings"

	goskema "github.com/reoring/goskema"
)

// Violation is one field-level validation failure, shaped for JSON
// responses and log output.
type Violation struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Violations extracts field-level violations from a validation error.
// Returns nil when err does not carry schema issues (for example an I/O
// failure from the backing store).
func Violations(err error) []Violation {
	iss, ok := goskema.AsIssues(err)
	if !ok {
		return nil
	}
	out := make([]Violation, 0, len(iss))
	for _, is := range iss {
		out = append(out, Violation{Path: is.Path, Code: is.Code, Message: is.Message})
	}
	return out
}

// IsViolation reports whether err represents a schema violation rather
// than an infrastructure failure.
func IsViolation(err error) bool {
	iss, ok := goskema.AsIssues(err)
	return ok && len(iss) > 0
}

// isValidEmail checks email syntax using net/mail (RFC 5322).
// ParseAddress accepts "Name <email>" forms, so the parsed address must
// round-trip to the input exactly.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

package schema

import (
	"context"
	"sync"
	"unicode/utf8"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"github.com/dalemusser/pipewright/internal/domain/models"
)

const (
	minNameLen    = 2
	minPhoneLen   = 10
	minMessageLen = 10
)

var (
	submission     goskema.Schema[models.ContactSubmission]
	submissionOnce sync.Once
)

// Submission returns the schema for contact form payloads.
func Submission() goskema.Schema[models.ContactSubmission] {
	submissionOnce.Do(func() {
		submission = buildSubmission()
	})
	return submission
}

// ParseSubmission validates a raw request body and returns the typed
// submission. The errors reported cover every failing field at once.
func ParseSubmission(ctx context.Context, data []byte) (models.ContactSubmission, error) {
	return goskema.ParseFrom(ctx, Submission(), goskema.JSONBytes(data))
}

func buildSubmission() goskema.Schema[models.ContactSubmission] {
	return g.ObjectOf[models.ContactSubmission]().
		Field("name", g.StringOf[string]()).Required().
		Field("phone", g.StringOf[string]()).Required().
		Field("email", g.StringOf[string]()).Required().
		Field("service", g.StringOf[string]()).Required().
		Field("preferredDate", g.StringOf[string]()).Optional().
		Field("preferredTime", g.StringOf[string]()).Optional().
		Field("message", g.StringOf[string]()).Required().
		UnknownStrip().
		RefineT("submission_rules", submissionRules).
		MustBind()
}

// submissionRules mirrors the client-side form checks so a bypassed
// frontend cannot push junk into the request log. Lengths are counted in
// runes, not bytes.
func submissionRules(dc goskema.DomainCtx[models.ContactSubmission], s models.ContactSubmission) []goskema.Issue {
	var out []goskema.Issue

	if utf8.RuneCountInString(s.Name) < minNameLen {
		out = append(out, dc.Ref.At("/name").Issue(
			goskema.CodeTooShort, "name must be at least 2 characters", "minLength", minNameLen))
	}
	if utf8.RuneCountInString(s.Phone) < minPhoneLen {
		out = append(out, dc.Ref.At("/phone").Issue(
			goskema.CodeTooShort, "phone must be at least 10 characters", "minLength", minPhoneLen))
	}
	if !isValidEmail(s.Email) {
		out = append(out, dc.Ref.At("/email").Issue(
			goskema.CodeInvalidFormat, "not a valid email address"))
	}
	if s.Service == "" {
		out = append(out, dc.Ref.At("/service").Issue(
			goskema.CodeRequired, "service selection is required"))
	}
	if utf8.RuneCountInString(s.Message) < minMessageLen {
		out = append(out, dc.Ref.At("/message").Issue(
			goskema.CodeTooShort, "message must be at least 10 characters", "minLength", minMessageLen))
	}

	return out
}

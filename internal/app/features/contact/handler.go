// Package contact provides the contact form submission endpoint.
//
// Endpoint:
//   - POST /api/contact - Validate and record a service request
//
// Submissions are validated, sanitized, assigned an id, and logged.
// Nothing is persisted; the structured log line is the record an operator
// follows up on. Email notification hooks can be layered on later without
// changing the endpoint contract.
package contact

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/system/htmlsanitize"
	"github.com/dalemusser/pipewright/internal/app/system/jsonutil"
	"github.com/dalemusser/pipewright/internal/app/system/schema"
)

// maxBodyBytes caps the request body. Form fields are short; anything
// bigger than this is not a contact form.
const maxBodyBytes = 64 << 10

// Handler handles contact form requests.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new contact form handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Response is the envelope for all contact endpoint responses.
type Response struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Errors  []schema.Violation `json:"errors,omitempty"`
}

// Submit handles POST /api/contact.
//
// Response (200 OK):
//
//	{"success": true, "message": "Thank you for your message. We will get back to you soon!"}
//
// Response (400 Bad Request):
//
//	{"success": false, "message": "Invalid form data", "errors": [ ... ]}
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		jsonutil.JSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	sub, err := schema.ParseSubmission(r.Context(), body)
	if err != nil {
		if vs := schema.Violations(err); vs != nil {
			h.logger.Info("contact form rejected",
				zap.Int("violations", len(vs)))
			jsonutil.JSON(w, http.StatusBadRequest, Response{
				Success: false,
				Message: "Invalid form data",
				Errors:  vs,
			})
			return
		}
		h.logger.Error("contact form parse failed", zap.Error(err))
		jsonutil.JSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "An error occurred. Please try again.",
		})
		return
	}

	if htmlsanitize.ContainsHTML(sub.Message) || htmlsanitize.ContainsHTML(sub.Name) {
		h.logger.Warn("contact form contained markup", zap.String("remote", r.RemoteAddr))
	}

	id := uuid.NewString()
	h.logger.Info("contact form submission",
		zap.String("submission_id", id),
		zap.String("name", htmlsanitize.Field(sub.Name)),
		zap.String("phone", htmlsanitize.Field(sub.Phone)),
		zap.String("email", htmlsanitize.Field(sub.Email)),
		zap.String("service", htmlsanitize.Field(sub.Service)),
		zap.String("preferred_date", htmlsanitize.Field(sub.PreferredDate)),
		zap.String("preferred_time", htmlsanitize.Field(sub.PreferredTime)),
		zap.String("message", htmlsanitize.Field(sub.Message)),
	)

	jsonutil.JSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Thank you for your message. We will get back to you soon!",
	})
}

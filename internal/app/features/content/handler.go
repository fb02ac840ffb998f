// Package content serves the validated site content document to the
// frontend.
//
// Endpoints (mounted at /api/content):
//   - GET /                    - Full document
//   - GET /business            - Business facts
//   - GET /contact-info        - Contact section
//   - GET /services            - Service catalog
//   - GET /services/{id}       - One service by slug
//   - GET /promotions          - Active promotions (optionally as of ?at=RFC3339)
//   - GET /testimonials        - Reviews plus average rating
//   - GET /faq                 - FAQs grouped by category
//   - GET /process             - Walkthrough steps in step order
//   - GET /service-areas       - Coverage area
//   - GET /service-areas/check - ZIP membership check (?zip=)
//
// Every response is read from the one cached document; a load failure
// surfaces as 503 so probes and the frontend can tell "bad content" from
// "no such route".
package content

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/store/sitecontent"
	"github.com/dalemusser/pipewright/internal/app/system/jsonutil"
	"github.com/dalemusser/pipewright/internal/domain/models"
)

// Handler handles content API requests.
type Handler struct {
	content *sitecontent.Store
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new content handler.
func NewHandler(content *sitecontent.Store, logger *zap.Logger) *Handler {
	return &Handler{
		content: content,
		logger:  logger,
		now:     time.Now,
	}
}

// serveUnavailable logs the load failure and answers 503. The document is
// re-read on the next request, so a fixed data.json heals without a
// restart.
func (h *Handler) serveUnavailable(w http.ResponseWriter, err error) {
	h.logger.Error("content unavailable", zap.Error(err))
	jsonutil.ServiceUnavailable(w, "content unavailable")
}

// FullDocument handles GET /api/content.
func (h *Handler) FullDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.FullDocument(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Business handles GET /api/content/business.
func (h *Handler) Business(w http.ResponseWriter, r *http.Request) {
	info, err := h.content.BusinessInfo(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, info)
}

// ContactInfo handles GET /api/content/contact-info.
func (h *Handler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.content.Contact(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, info)
}

// Services handles GET /api/content/services.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.Services(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, services)
}

// ServiceByID handles GET /api/content/services/{id}.
func (h *Handler) ServiceByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	svc, ok, err := h.content.ServiceByID(r.Context(), id)
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	if !ok {
		jsonutil.NotFound(w, "service not found")
		return
	}
	jsonutil.OK(w, svc)
}

// Promotions handles GET /api/content/promotions.
//
// By default "active" is evaluated at the server's current time. An ?at=
// query (RFC 3339) evaluates at that instant instead, which keeps CDN
// previews and tests deterministic.
func (h *Handler) Promotions(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	if at := r.URL.Query().Get("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			jsonutil.BadRequest(w, "at must be an RFC 3339 timestamp")
			return
		}
		now = parsed
	}

	promos, err := h.content.ActivePromotions(r.Context(), now)
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, promos)
}

// TestimonialsResponse is the testimonials endpoint payload.
type TestimonialsResponse struct {
	Testimonials  []models.Testimonial `json:"testimonials"`
	AverageRating float64              `json:"averageRating"`
}

// Testimonials handles GET /api/content/testimonials.
func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	ts, err := h.content.Testimonials(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, TestimonialsResponse{
		Testimonials:  ts,
		AverageRating: sitecontent.AverageRating(ts),
	})
}

// FAQ handles GET /api/content/faq.
func (h *Handler) FAQ(w http.ResponseWriter, r *http.Request) {
	groups, err := h.content.FAQsByCategory(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, groups)
}

// Process handles GET /api/content/process.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	steps, err := h.content.ProcessSteps(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, steps)
}

// ServiceAreas handles GET /api/content/service-areas.
func (h *Handler) ServiceAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.content.ServiceAreas(r.Context())
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, areas)
}

// ZipCheckResponse is the service-area check payload.
type ZipCheckResponse struct {
	Zip      string `json:"zip"`
	Serviced bool   `json:"serviced"`
}

// CheckZip handles GET /api/content/service-areas/check?zip=65101.
func (h *Handler) CheckZip(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")
	if zip == "" {
		jsonutil.BadRequest(w, "zip query parameter is required")
		return
	}
	serviced, err := h.content.IsZipServiced(r.Context(), zip)
	if err != nil {
		h.serveUnavailable(w, err)
		return
	}
	jsonutil.OK(w, ZipCheckResponse{Zip: zip, Serviced: serviced})
}

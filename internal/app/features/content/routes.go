package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/pipewright/internal/app/system/apicors"
)

// Routes returns a router with the content API endpoints.
// All routes are public reads; CORS is permissive.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(apicors.Middleware())

	r.Get("/", h.FullDocument)
	r.Get("/business", h.Business)
	r.Get("/contact-info", h.ContactInfo)
	r.Get("/services", h.Services)
	r.Get("/services/{id}", h.ServiceByID)
	r.Get("/promotions", h.Promotions)
	r.Get("/testimonials", h.Testimonials)
	r.Get("/faq", h.FAQ)
	r.Get("/process", h.Process)
	r.Get("/service-areas", h.ServiceAreas)
	r.Get("/service-areas/check", h.CheckZip)

	return r
}

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/pipewright/internal/app/system/apicors"
)

// Routes returns a router with the contact form endpoint.
//
// When mounted at /api/contact:
//   - POST /api/contact - Submit a service request
//
// CORS is permissive: the form is public and nothing here reads cookies.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(apicors.Middleware())
	r.Post("/", h.Submit)
	return r
}

// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	contactfeature "github.com/dalemusser/pipewright/internal/app/features/contact"
	contentfeature "github.com/dalemusser/pipewright/internal/app/features/content"
	healthfeature "github.com/dalemusser/pipewright/internal/app/features/health"
	"github.com/dalemusser/pipewright/internal/app/system/timeouts"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and Startup have
// completed. The surface is small and entirely public:
//   - /api/content/*  - validated site content (read-only)
//   - /api/contact    - contact form submission
//   - /health/*       - health and probe endpoints
//
// There are no sessions and no cookies, so there is no CSRF layer; the
// per-feature routers apply permissive CORS themselves.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(timeouts.Request()))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	contentHandler := contentfeature.NewHandler(deps.Content, logger)
	r.Mount("/api/content", contentfeature.Routes(contentHandler))

	contactHandler := contactfeature.NewHandler(logger)
	r.Mount("/api/contact", contactfeature.Routes(contactHandler))

	healthHandler := healthfeature.NewHandler(deps.Content, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	return r, nil
}

// Package apicors provides CORS middleware for the public JSON API.
//
// Every endpoint here is either a public content read or an anonymous
// form submission; nothing reads cookies or other credentials. That means:
//   - Origins can be "*" (any origin), since there are no cookies to protect
//   - AllowCredentials stays false
//   - The frontend can be served from any host (static hosting, CDN, local dev)
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware for the public API endpoints.
//
// This middleware:
//   - Allows any origin (Access-Control-Allow-Origin: *)
//   - Does not allow credentials (nothing here uses cookies)
//   - Allows the methods and headers the content and contact endpoints use
//   - Handles preflight OPTIONS requests
//
// Usage in routes.go:
//
//	r := chi.NewRouter()
//	r.Use(apicors.Middleware())
//	r.Post("/", h.Submit)
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MiddlewareWithOrigins returns CORS middleware that only allows specific
// origins. Use this when the site is served from a known set of domains
// and you want to stop other sites from proxying the API in browsers.
//
// Usage:
//
//	r.Use(apicors.MiddlewareWithOrigins("https://rivertownplumbing.example.com"))
func MiddlewareWithOrigins(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// If the origin is not allowed, no CORS headers are set and the
			// browser blocks the response.
			if origin != "" {
				if _, allowed := originSet[origin]; allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// ContentPath is the location of the site content document (data.json).
	// The file is read once per process and validated before serving.
	ContentPath string

	// PhoneRegion is the default region for interpreting phone numbers
	// written without a country code (ISO 3166-1 alpha-2, e.g. "US").
	PhoneRegion string
}

// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
// Change this constant when forking pipewright for a new project.
const EnvVarPrefix = "PIPEWRIGHT"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: content_path, phone_region
//   - Environment variables: PIPEWRIGHT_CONTENT_PATH, PIPEWRIGHT_PHONE_REGION
//   - Command-line flags: --content_path, --phone_region
var appConfigKeys = []config.AppKey{
	{Name: "content_path", Default: "./data.json", Desc: "Path to the site content document"},
	{Name: "phone_region", Default: "US", Desc: "Default region for phone number checks (ISO 3166-1 alpha-2)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PIPEWRIGHT_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ContentPath: appValues.String("content_path"),
		PhoneRegion: appValues.String("phone_region"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The content document must at least exist; its contents are validated
// against the schema during Startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.ContentPath == "" {
		return fmt.Errorf("content_path must not be empty")
	}
	info, err := os.Stat(appCfg.ContentPath)
	if err != nil {
		logger.Error("content document not found", zap.String("path", appCfg.ContentPath), zap.Error(err))
		return fmt.Errorf("content document %s: %w", appCfg.ContentPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("content document %s is a directory", appCfg.ContentPath)
	}
	if len(appCfg.PhoneRegion) != 2 {
		return fmt.Errorf("phone_region must be a two-letter region code, got %q", appCfg.PhoneRegion)
	}
	return nil
}

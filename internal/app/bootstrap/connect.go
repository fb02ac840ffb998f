// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/store/sitecontent"
)

// ConnectDB builds the app's backends.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// There is no database here: the backend is the content document on
// disk, wrapped in a store that reads and validates it once. No I/O
// happens yet; the document is loaded in Startup so a bad file fails
// the boot with a clear error.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	src := sitecontent.FileSource{Path: appCfg.ContentPath}
	store := sitecontent.New(src, logger)

	logger.Info("content store configured", zap.String("path", appCfg.ContentPath))

	return DBDeps{Content: store}, nil
}

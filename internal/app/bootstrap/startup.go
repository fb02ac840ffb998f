// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/system/phone"
	"github.com/dalemusser/pipewright/internal/app/system/schema"
)

// Startup runs once after backends are built, before the HTTP handler is
// built and requests are served.
//
// This app warms the content cache here: the document is read and
// validated so that a broken data.json aborts startup instead of
// surfacing as 503s on the first requests. Each violation is logged with
// its field path so the document can be fixed in one pass.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	phone.Configure(appCfg.PhoneRegion)

	if err := deps.Content.Load(ctx); err != nil {
		for _, v := range schema.Violations(err) {
			logger.Error("content violation",
				zap.String("path", v.Path),
				zap.String("code", v.Code),
				zap.String("message", v.Message))
		}
		return err
	}

	return nil
}

// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/app/resources"
	"github.com/safispaces/safispaces/internal/app/system/timeouts"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having live
// database connections and fully loaded configuration. Unlike ConnectDB and
// EnsureSchema which focus on infrastructure, Startup is for application-level
// initialization.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Submit: appCfg.QuoteSubmitTimeout,
	})

	logger.Info("startup complete",
		zap.Duration("quote_submit_timeout", appCfg.QuoteSubmitTimeout),
		zap.Bool("rate_limit_enabled", appCfg.RateLimitEnabled),
		zap.Bool("crm_enabled", appCfg.CRMEndpoint != ""),
		zap.Bool("inbox_enabled", appCfg.InboxUser != "" && appCfg.InboxPasswordHash != ""),
	)

	return nil
}

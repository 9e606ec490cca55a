// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	cur := timeouts.Current()

	logger.Info("program design service starting",
		zap.String("env", coreCfg.Env),
		zap.String("id_style", appCfg.IDStyle),
		zap.String("audit_log_projects", appCfg.AuditLogProjects),
		zap.Int("write_rate_per_minute", appCfg.WriteRatePerMinute),
		zap.Duration("timeout_short", cur.Short),
		zap.Duration("timeout_medium", cur.Medium))
	return nil
}

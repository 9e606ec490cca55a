// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/programdesign/internal/app/system/auditlog"
	"github.com/dalemusser/programdesign/internal/app/system/ids"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: PROGRAMDESIGN_MONGO_URI, PROGRAMDESIGN_ID_STYLE, etc.
//   - Command-line flags: --mongo_uri, --id_style, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "program_design", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "programdesign-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "8760h", Desc: "Planner session lifetime (e.g. 720h)"},

	{Name: "id_style", Default: ids.StyleUUID, Desc: "List entry id style: 'uuid' or 'nanoid'"},
	{Name: "audit_log_projects", Default: auditlog.ModeAll, Desc: "Project event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "write_rate_per_minute", Default: 120, Desc: "Project writes allowed per planner per minute (0 disables)"},
	{Name: "write_rate_burst", Default: 20, Desc: "Burst size for project writes"},

	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document store calls"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list and history queries"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// PROGRAMDESIGN_* environment variables and flags with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROGRAMDESIGN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 365*24*time.Hour),

		IDStyle:          appValues.String("id_style"),
		AuditLogProjects: appValues.String("audit_log_projects"),

		WriteRatePerMinute: appValues.Int("write_rate_per_minute"),
		WriteRateBurst:     appValues.Int("write_rate_burst"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must be set")
	}
	if _, err := ids.NewGenerator(appCfg.IDStyle); err != nil {
		return fmt.Errorf("id_style: %w", err)
	}
	if !auditlog.ValidMode(appCfg.AuditLogProjects) {
		return fmt.Errorf("audit_log_projects must be one of all, db, log, off (got %q)", appCfg.AuditLogProjects)
	}
	if appCfg.WriteRatePerMinute < 0 || appCfg.WriteRateBurst < 0 {
		return fmt.Errorf("write_rate_per_minute and write_rate_burst must not be negative")
	}
	if appCfg.WriteRatePerMinute > 0 && appCfg.WriteRateBurst == 0 {
		return fmt.Errorf("write_rate_burst must be at least 1 when write_rate_per_minute is set")
	}
	if appCfg.SessionMaxAge <= 0 {
		return fmt.Errorf("session_max_age must be positive")
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be changed from the development default in prod")
	}
	if len(appCfg.SessionKey) < 32 {
		logger.Warn("session_key is shorter than 32 characters")
	}
	return nil
}

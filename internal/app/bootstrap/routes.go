// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/programdesign/internal/app/features/errors"
	healthfeature "github.com/dalemusser/programdesign/internal/app/features/health"
	projectsfeature "github.com/dalemusser/programdesign/internal/app/features/projects"
	transformfeature "github.com/dalemusser/programdesign/internal/app/features/transform"
	auditstore "github.com/dalemusser/programdesign/internal/app/store/audit"
	"github.com/dalemusser/programdesign/internal/app/system/auditlog"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/ids"
	"github.com/dalemusser/programdesign/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The service is a JSON API: /health and /transform need no session, while
// everything under /projects is scoped to the planner carried in the
// session cookie.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	gen, err := ids.NewGenerator(appCfg.IDStyle)
	if err != nil {
		return nil, err
	}

	auditLog := auditlog.New(auditstore.New(deps.MongoDatabase), logger, auditlog.Config{
		Projects: appCfg.AuditLogProjects,
	})

	var limiter *ratelimit.Limiter
	if appCfg.WriteRatePerMinute > 0 {
		limiter = ratelimit.New(float64(appCfg.WriteRatePerMinute)/60, appCfg.WriteRateBurst)
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.NotFound(errorsfeature.NotFoundHandler)
	r.MethodNotAllowed(errorsfeature.MethodNotAllowedHandler)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Stateless polarity transform
	transformHandler := transformfeature.NewHandler(logger)
	r.Mount("/transform", transformfeature.Routes(transformHandler))

	// Projects: LoadPlanner issues the anonymous planner id on first visit.
	projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, gen, auditLog, errLog, logger)
	r.With(sessionMgr.LoadPlanner).Mount("/projects", projectsfeature.Routes(projectsHandler, sessionMgr, limiter))

	return r, nil
}

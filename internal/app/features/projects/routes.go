// internal/app/features/projects/routes.go
package projects

import (
	"net/http"

	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// writeKey buckets write limits per client IP. Planner ids are not used:
// LoadPlanner hands a fresh id to every cookieless request.
func writeKey(r *http.Request) string {
	return "ip:" + ratelimit.ClientIP(r)
}

// Routes returns the subrouter mounted under /projects. A nil limiter
// leaves writes unthrottled.
func Routes(h *Handler, sm *auth.SessionManager, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequirePlanner)

		// READ
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeProject)
		pr.Get("/{id}/progress", h.ServeProgress)
		pr.Get("/{id}/export", h.ServeExport)
		pr.Get("/{id}/history", h.ServeHistory)

		// NAVIGATE (computes, stores nothing)
		pr.Post("/{id}/navigate", h.HandleNavigate)

		// WRITE
		pr.Group(func(wr chi.Router) {
			if limiter != nil {
				wr.Use(limiter.Middleware(writeKey))
			}
			wr.Post("/", h.HandleCreate)
			wr.Patch("/{id}", h.HandleEdit)
			wr.Delete("/{id}", h.HandleDelete)
			wr.Put("/{id}/sections/{section}", h.HandleSaveSection)
			wr.Post("/{id}/steps/{step}/complete", h.HandleCompleteStep)
			wr.Post("/{id}/objective-tree/derive", h.HandleDeriveObjectiveTree)
		})
	})

	return r
}

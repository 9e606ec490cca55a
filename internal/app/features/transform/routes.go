// internal/app/features/transform/routes.go
package transform

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /transform.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleTransform)
	r.Get("/rules", h.ServeRules)
	return r
}

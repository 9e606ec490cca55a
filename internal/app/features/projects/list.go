package projects

import (
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /projects: the planner's projects, most recently
// updated first, each with its completion summary.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list projects")
	defer cancel()

	owner := auth.PlannerID(r)
	list, err := h.Projects.ListByOwner(ctx, owner)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects failed", err, msgDBError, zap.String("owner_id", owner))
		return
	}

	out := make([]projectSummary, 0, len(list))
	for _, p := range list {
		out = append(out, newProjectSummary(p))
	}
	apierrors.WriteJSON(w, http.StatusOK, map[string]any{"projects": out})
}

package projects

import (
	"net/http"
	"strconv"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/store/audit"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// ServeHistory handles GET /projects/{id}/history?limit=N: the project's
// recorded audit events, newest first, with the total count so a client
// can tell when limit cut the list short. Events are only present when the
// project audit mode writes to the database.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			apierrors.BadRequest(w, "Limit must be a positive integer.")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "project history")
	defer cancel()

	owner := auth.PlannerID(r)
	events, err := h.Events.ListByProject(ctx, owner, p.ID, int64(limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load project history failed", err, msgDBError, zap.String("project_id", p.ID.Hex()))
		return
	}
	total, err := h.Events.CountByFilter(ctx, audit.QueryFilter{ProjectID: &p.ID, OwnerID: owner})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count project history failed", err, msgDBError, zap.String("project_id", p.ID.Hex()))
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, map[string]any{"events": events, "total": total})
}

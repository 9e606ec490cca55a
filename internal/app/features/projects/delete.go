package projects

import (
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /projects/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := projectID(r)
	if !ok {
		apierrors.BadRequest(w, "Invalid project id.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete project")
	defer cancel()

	owner := auth.PlannerID(r)
	n, err := h.Projects.Delete(ctx, owner, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete project failed", err, "Unable to delete project.", zap.String("project_id", oid.Hex()))
		return
	}
	if n == 0 {
		apierrors.NotFound(w, msgNotFound)
		return
	}

	h.Audit.ProjectDeleted(ctx, r, owner, oid)
	w.WriteHeader(http.StatusNoContent)
}

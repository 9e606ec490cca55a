package projects

import (
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleEdit handles PATCH /projects/{id}: replaces name and description.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, ok := projectID(r)
	if !ok {
		apierrors.BadRequest(w, "Invalid project id.")
		return
	}
	var in projectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in, fieldErrs := validateInput(in, false)
	if fieldErrs != nil {
		apierrors.WriteValidation(w, "Invalid project.", fieldErrs)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "edit project")
	defer cancel()

	owner := auth.PlannerID(r)
	p, err := h.Projects.UpdateInfo(ctx, owner, oid, in.Name, in.Description)
	if err != nil {
		h.writeStoreError(w, r, "update project failed", err, zap.String("project_id", oid.Hex()))
		return
	}

	h.Audit.ProjectUpdated(ctx, r, owner, p.ID, p.Name)
	apierrors.WriteJSON(w, http.StatusOK, newProjectResponse(p))
}

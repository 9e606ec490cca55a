package projects

import (
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/normalize"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"go.uber.org/zap"
)

const maxNameLen = 200

// validateInput normalizes a create/edit body. requireName is false for
// edits, where a blank name keeps the current one.
func validateInput(in projectInput, requireName bool) (projectInput, map[string]string) {
	in.Name = normalize.Name(in.Name)
	in.Description = normalize.Text(in.Description)

	errs := map[string]string{}
	if requireName && in.Name == "" {
		errs["name"] = "Name is required."
	}
	if len([]rune(in.Name)) > maxNameLen {
		errs["name"] = "Name is too long."
	}
	if len(errs) == 0 {
		return in, nil
	}
	return in, errs
}

// HandleCreate handles POST /projects. New projects start at step 1 with
// empty data.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in, fieldErrs := validateInput(in, true)
	if fieldErrs != nil {
		apierrors.WriteValidation(w, "Invalid project.", fieldErrs)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create project")
	defer cancel()

	owner := auth.PlannerID(r)
	p, err := h.Projects.Create(ctx, models.Project{
		OwnerID:     owner,
		Name:        in.Name,
		Description: in.Description,
		CurrentStep: wizard.FirstStep,
	})
	if err != nil {
		h.writeStoreError(w, r, "create project failed", err, zap.String("owner_id", owner))
		return
	}

	h.Log.Info("project created",
		zap.String("project_id", p.ID.Hex()),
		zap.String("owner_id", owner))
	h.Audit.ProjectCreated(ctx, r, owner, p.ID, p.Name)

	w.Header().Set("Location", "/projects/"+p.ID.Hex())
	apierrors.WriteJSON(w, http.StatusCreated, newProjectResponse(p))
}

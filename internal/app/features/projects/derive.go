package projects

import (
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/polarity"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"go.uber.org/zap"
)

// HandleDeriveObjectiveTree handles POST /projects/{id}/objective-tree/derive.
// The saved problem tree is run through the polarity transform and the
// result replaces the stored objective tree.
func (h *Handler) HandleDeriveObjectiveTree(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}
	pt := p.Data.ProblemTree
	if strings.TrimSpace(pt.CentralProblem) == "" && len(pt.Causes) == 0 && len(pt.Effects) == 0 {
		apierrors.BadRequest(w, "Save a problem tree before deriving the objective tree.")
		return
	}

	tree := polarity.DeriveObjectiveTree(pt, h.IDs)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "derive objective tree")
	defer cancel()

	owner := auth.PlannerID(r)
	updated, err := h.Projects.UpdateSection(ctx, owner, p.ID, models.SectionObjectiveTree, tree)
	if err != nil {
		h.writeStoreError(w, r, "save derived objective tree failed", err, zap.String("project_id", p.ID.Hex()))
		return
	}

	h.Audit.ObjectiveTreeDerived(ctx, r, owner, p.ID, len(tree.Means), len(tree.Ends))
	apierrors.WriteJSON(w, http.StatusOK, sectionResponse{
		Section:  models.SectionObjectiveTree,
		Step:     wizard.StepObjectiveTree,
		Complete: wizard.IsComplete(wizard.StepObjectiveTree, updated.Data),
		Project:  updated,
		Progress: wizard.EvaluateProject(updated),
	})
}

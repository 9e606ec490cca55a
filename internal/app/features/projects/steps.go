package projects

import (
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Navigate actions.
const (
	actionNext     = "next"
	actionPrevious = "previous"
	actionJump     = "jump"
)

// HandleCompleteStep handles POST /projects/{id}/steps/{step}/complete.
// The stored step becomes max(stored, step). The step's completion rule is
// reported as "satisfied" but not enforced.
func (h *Handler) HandleCompleteStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil || !wizard.Valid(step) {
		apierrors.BadRequest(w, "Step must be between 1 and 7.")
		return
	}
	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "complete step")
	defer cancel()

	owner := auth.PlannerID(r)
	stored, err := h.Projects.AdvanceStep(ctx, owner, p.ID, step)
	if err != nil {
		h.writeStoreError(w, r, "advance step failed", err,
			zap.String("project_id", p.ID.Hex()),
			zap.Int("step", step))
		return
	}
	p.CurrentStep = stored

	h.Audit.StepCompleted(ctx, r, owner, p.ID, step, stored)
	apierrors.WriteJSON(w, http.StatusOK, stepCompleteResponse{
		Step:        step,
		CurrentStep: stored,
		Satisfied:   wizard.IsComplete(step, p.Data),
		Progress:    wizard.EvaluateProject(p),
	})
}

// HandleNavigate handles POST /projects/{id}/navigate. It computes the next
// displayed step from the stored reached step and persists nothing.
// A missing displayed step means the project was just opened; a displayed
// step past the indicator gate is pulled back to Reached+1.
func (h *Handler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var in navigateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Displayed != 0 && !wizard.Valid(in.Displayed) {
		apierrors.BadRequest(w, "Displayed step must be between 1 and 7.")
		return
	}
	action := strings.ToLower(strings.TrimSpace(in.Action))
	switch action {
	case actionNext, actionPrevious, actionJump:
	default:
		apierrors.BadRequest(w, `Action must be "next", "previous" or "jump".`)
		return
	}

	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}

	nav := wizard.NewNavigator(p.CurrentStep)
	if in.Displayed != 0 {
		nav.Show(in.Displayed)
	}

	var changed bool
	switch action {
	case actionNext:
		changed = nav.Next()
	case actionPrevious:
		changed = nav.Previous()
	case actionJump:
		changed = nav.Jump(in.Target)
	}

	step, _ := wizard.Lookup(nav.Displayed)
	apierrors.WriteJSON(w, http.StatusOK, navigateResponse{
		Displayed: nav.Displayed,
		Reached:   nav.Reached,
		Changed:   changed,
		Step:      step,
	})
}

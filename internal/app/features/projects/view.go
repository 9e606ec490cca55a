package projects

import (
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/wizard"
)

// ServeProject handles GET /projects/{id}.
func (h *Handler) ServeProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, newProjectResponse(p))
}

// ServeProgress handles GET /projects/{id}/progress.
func (h *Handler) ServeProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, wizard.EvaluateProject(p))
}

package projects

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/ids"
	"github.com/dalemusser/programdesign/internal/app/system/normalize"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// decodeSection unmarshals raw into the section's model, cleans its text
// and gives every new list entry an id.
func decodeSection(sec models.Section, raw json.RawMessage, g ids.Generator) (any, error) {
	switch sec {
	case models.SectionProblemDefinition:
		var v models.ProblemDefinition
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return normalize.ProblemDefinition(v), nil

	case models.SectionStakeholders:
		var v models.Stakeholders
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.Stakeholders(v)
		ids.Fill(v.Items, g)
		return v, nil

	case models.SectionProblemTree:
		var v models.ProblemTree
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.ProblemTree(v)
		ids.Fill(v.Causes, g)
		ids.Fill(v.Effects, g)
		return v, nil

	case models.SectionObjectiveTree:
		var v models.ObjectiveTree
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.ObjectiveTree(v)
		ids.Fill(v.Means, g)
		ids.Fill(v.Ends, g)
		return v, nil

	case models.SectionResultsChain:
		var v models.ResultsChain
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.ResultsChain(v)
		ids.Fill(v.Inputs, g)
		ids.Fill(v.Activities, g)
		ids.Fill(v.Outputs, g)
		ids.Fill(v.Outcomes, g)
		return v, nil

	case models.SectionLogframe:
		var v models.Logframe
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.Logframe(v)
		fixed := []models.LogframeRow{v.Goal, v.Purpose}
		ids.Fill(fixed, g)
		v.Goal, v.Purpose = fixed[0], fixed[1]
		ids.Fill(v.Outputs, g)
		ids.Fill(v.Activities, g)
		return v, nil

	case models.SectionMonitoring:
		var v models.Monitoring
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		v = normalize.Monitoring(v)
		ids.Fill(v.Indicators, g)
		return v, nil
	}
	return nil, errUnknownSection
}

var errUnknownSection = errors.New("unknown section")

// HandleSaveSection handles PUT /projects/{id}/sections/{section}. The body
// is the whole sub-document; it replaces what was stored. Saving never
// checks the step's completion rule, it only reports it.
func (h *Handler) HandleSaveSection(w http.ResponseWriter, r *http.Request) {
	oid, ok := projectID(r)
	if !ok {
		apierrors.BadRequest(w, "Invalid project id.")
		return
	}
	sec, ok := models.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		apierrors.BadRequest(w, "Unknown section.")
		return
	}

	var raw json.RawMessage
	if !decodeJSON(w, r, &raw) {
		return
	}
	value, err := decodeSection(sec, raw, h.IDs)
	if err != nil {
		apierrors.BadRequest(w, "Section body does not match the "+string(sec)+" shape.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "save section")
	defer cancel()

	owner := auth.PlannerID(r)
	p, err := h.Projects.UpdateSection(ctx, owner, oid, sec, value)
	if err != nil {
		h.writeStoreError(w, r, "save section failed", err,
			zap.String("project_id", oid.Hex()),
			zap.String("section", string(sec)))
		return
	}

	step, _ := wizard.StepForSection(sec)
	complete := wizard.IsComplete(step.ID, p.Data)
	h.Audit.SectionSaved(ctx, r, owner, p.ID, string(sec), complete)

	apierrors.WriteJSON(w, http.StatusOK, sectionResponse{
		Section:  sec,
		Step:     step.ID,
		Complete: complete,
		Project:  p,
		Progress: wizard.EvaluateProject(p),
	})
}

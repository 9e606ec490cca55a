// internal/app/features/transform/handler.go
package transform

import (
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/polarity"
	"go.uber.org/zap"
)

const (
	maxBodyBytes = 256 << 10
	maxTexts     = 500
)

// Handler serves the polarity transform as a stateless API, so a form can
// preview objective wording before anything is saved.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type transformRequest struct {
	Text  *string  `json:"text"`
	Texts []string `json:"texts"`
}

// Fields are pointers so each key appears exactly when the request sent it,
// including an empty batch.
type transformResponse struct {
	Text  *string   `json:"text,omitempty"`
	Texts *[]string `json:"texts,omitempty"`
}

type ruleView struct {
	Trigger     string `json:"trigger"`
	Replacement string `json:"replacement"`
}

// HandleTransform handles POST /transform with {"text": "..."} or
// {"texts": ["...", ...]}. Both may be given.
func (h *Handler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		apierrors.BadRequest(w, "Request body must be JSON with \"text\" or \"texts\".")
		return
	}
	if req.Text == nil && req.Texts == nil {
		apierrors.BadRequest(w, "Provide \"text\" or \"texts\".")
		return
	}
	if len(req.Texts) > maxTexts {
		apierrors.BadRequest(w, "Too many texts in one request.")
		return
	}

	var resp transformResponse
	if req.Text != nil {
		out := polarity.Transform(*req.Text)
		resp.Text = &out
	}
	if req.Texts != nil {
		out := polarity.TransformAll(req.Texts)
		resp.Texts = &out
	}

	h.Log.Debug("polarity transform",
		zap.Bool("single", req.Text != nil),
		zap.Int("batch", len(req.Texts)))
	apierrors.WriteJSON(w, http.StatusOK, resp)
}

// ServeRules handles GET /transform/rules: the trigger table in the order
// it is applied.
func (h *Handler) ServeRules(w http.ResponseWriter, r *http.Request) {
	rules := polarity.Rules()
	out := make([]ruleView, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ruleView{Trigger: rule.Trigger, Replacement: rule.Replacement})
	}
	apierrors.WriteJSON(w, http.StatusOK, map[string]any{"rules": out})
}

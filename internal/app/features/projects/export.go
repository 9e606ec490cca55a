package projects

import (
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/system/export"
	"go.uber.org/zap"
)

// ServeExport handles GET /projects/{id}/export?format=json|yaml and sends
// the whole project as a download.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		apierrors.BadRequest(w, `Format must be "json" or "yaml".`)
		return
	}
	p, ok := h.loadProject(w, r)
	if !ok {
		return
	}

	body, err := export.Marshal(export.NewDocument(p, time.Now()), format)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "export project failed", err, "Unable to export project.",
			zap.String("project_id", p.ID.Hex()),
			zap.String("format", format))
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(p.Name, format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

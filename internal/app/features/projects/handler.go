// internal/app/features/projects/handler.go
package projects

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/programdesign/internal/app/features/errors"
	"github.com/dalemusser/programdesign/internal/app/store/audit"
	projectstore "github.com/dalemusser/programdesign/internal/app/store/projects"
	"github.com/dalemusser/programdesign/internal/app/system/auditlog"
	"github.com/dalemusser/programdesign/internal/app/system/auth"
	"github.com/dalemusser/programdesign/internal/app/system/ids"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	maxBodyBytes = 1 << 20

	msgNotFound = "Project not found"
	msgDBError  = "A database error occurred."
)

// Handler is the shared dependency container for the projects feature.
type Handler struct {
	DB       *mongo.Database
	Projects *projectstore.Store
	Events   *audit.Store
	Audit    *auditlog.Logger
	ErrLog   *apierrors.ErrorLogger
	IDs      ids.Generator
	Log      *zap.Logger
}

// NewHandler wires the stores on db. A nil generator defaults to UUIDs.
func NewHandler(db *mongo.Database, gen ids.Generator, auditLog *auditlog.Logger, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if gen == nil {
		gen = ids.UUID{}
	}
	return &Handler{
		DB:       db,
		Projects: projectstore.New(db),
		Events:   audit.New(db),
		Audit:    auditLog,
		ErrLog:   errLog,
		IDs:      gen,
		Log:      logger,
	}
}

// projectID parses the {id} URL parameter.
func projectID(r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return oid, err == nil
}

// loadProject resolves {id} for the current planner and writes the error
// response itself when it cannot.
func (h *Handler) loadProject(w http.ResponseWriter, r *http.Request) (models.Project, bool) {
	oid, ok := projectID(r)
	if !ok {
		apierrors.BadRequest(w, "Invalid project id.")
		return models.Project{}, false
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load project")
	defer cancel()

	p, err := h.Projects.GetOwned(ctx, auth.PlannerID(r), oid)
	if err != nil {
		h.writeStoreError(w, r, "load project failed", err, zap.String("project_id", oid.Hex()))
		return models.Project{}, false
	}
	return p, true
}

// writeStoreError maps store errors to responses.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		apierrors.NotFound(w, msgNotFound)
	case errors.Is(err, projectstore.ErrDuplicateProjectName):
		apierrors.Conflict(w, "A project with this name already exists.")
	case errors.Is(err, projectstore.ErrUnknownSection), errors.Is(err, projectstore.ErrSectionMismatch):
		apierrors.BadRequest(w, "Unknown section.")
	case errors.Is(err, projectstore.ErrInvalidStep):
		apierrors.BadRequest(w, "Step must be between 1 and 7.")
	default:
		h.ErrLog.LogServerError(w, r, msg, err, msgDBError, fields...)
	}
}

// decodeJSON reads a JSON body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		apierrors.BadRequest(w, "Request body must be valid JSON.")
		return false
	}
	return true
}

package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calling it again on the same request adds to the existing route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, _ := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProject inserts a step-1 project with empty data for ownerID.
func (f *Fixtures) CreateProject(ctx context.Context, ownerID, name string) models.Project {
	f.t.Helper()
	return f.CreateProjectWith(ctx, ownerID, name, 1, models.ProjectData{})
}

// CreateProjectWith inserts a project with the given reached step and data.
func (f *Fixtures) CreateProjectWith(ctx context.Context, ownerID, name string, step int, data models.ProjectData) models.Project {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	p := models.Project{
		ID:          primitive.NewObjectID(),
		OwnerID:     ownerID,
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "Test project",
		CurrentStep: step,
		Data:        data,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("CreateProject(%q) failed: %v", name, err)
	}
	return p
}

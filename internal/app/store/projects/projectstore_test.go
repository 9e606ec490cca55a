package projectstore_test

import (
	"errors"
	"testing"
	"time"

	projectstore "github.com/dalemusser/programdesign/internal/app/store/projects"
	"github.com/dalemusser/programdesign/internal/app/system/indexes"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/dalemusser/programdesign/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Project{
		OwnerID:     "planner-1",
		Name:        "Rural Literacy",
		Description: "Reading outcomes in district schools",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI != "rural literacy" {
		t.Errorf("NameCI = %q, want %q", created.NameCI, "rural literacy")
	}
	if created.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", created.CurrentStep)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Rural Literacy" || got.OwnerID != "planner-1" {
		t.Errorf("GetByID returned %+v", got)
	}
}

func TestStore_Create_DuplicateNameSameOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "Clean Water"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "clean water"})
	if !errors.Is(err, projectstore.ErrDuplicateProjectName) {
		t.Errorf("expected ErrDuplicateProjectName, got %v", err)
	}
	if _, err := store.Create(ctx, models.Project{OwnerID: "planner-2", Name: "Clean Water"}); err != nil {
		t.Errorf("same name for another planner should succeed: %v", err)
	}
}

func TestStore_GetOwned_OtherOwnerNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "planner-1", "Mine")

	if _, err := store.GetOwned(ctx, "planner-1", p.ID); err != nil {
		t.Fatalf("GetOwned(owner) failed: %v", err)
	}
	if _, err := store.GetOwned(ctx, "planner-2", p.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetOwned(other) err = %v, want ErrNoDocuments", err)
	}
	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID(missing) err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_ListByOwner_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, _ := store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "First"})
	time.Sleep(5 * time.Millisecond)
	_, _ = store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "Second"})
	_, _ = store.Create(ctx, models.Project{OwnerID: "planner-2", Name: "Elsewhere"})
	time.Sleep(5 * time.Millisecond)

	// Touching the first project moves it to the top.
	if _, err := store.UpdateInfo(ctx, "planner-1", first.ID, "First", "edited"); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	list, err := store.ListByOwner(ctx, "planner-1")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"First", "Second"}, names); diff != "" {
		t.Errorf("ListByOwner order mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ListByOwner_EmptyIsNonNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.ListByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", list)
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "planner-1", "Old Name")

	got, err := store.UpdateInfo(ctx, "planner-1", p.ID, "New Name", "")
	if err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}
	if got.Name != "New Name" || got.NameCI != "new name" {
		t.Errorf("name not replaced: %q / %q", got.Name, got.NameCI)
	}
	if got.Description != "" {
		t.Errorf("description should be cleared, got %q", got.Description)
	}

	// Blank name keeps the existing one.
	got, err = store.UpdateInfo(ctx, "planner-1", p.ID, "  ", "desc")
	if err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}
	if got.Name != "New Name" || got.Description != "desc" {
		t.Errorf("unexpected project after blank-name update: %+v", got)
	}

	if _, err := store.UpdateInfo(ctx, "planner-2", p.ID, "Stolen", ""); err != mongo.ErrNoDocuments {
		t.Errorf("UpdateInfo(other owner) err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_UpdateInfo_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	_, _ = store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "Taken"})
	other, _ := store.Create(ctx, models.Project{OwnerID: "planner-1", Name: "Other"})

	_, err := store.UpdateInfo(ctx, "planner-1", other.ID, "TAKEN", "")
	if !errors.Is(err, projectstore.ErrDuplicateProjectName) {
		t.Errorf("expected ErrDuplicateProjectName, got %v", err)
	}
}

func TestStore_UpdateSection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "planner-1", "Trees")
	tree := models.ProblemTree{
		CentralProblem: "Low literacy",
		Causes:         []models.TreeNode{{ID: "c1", Text: "Lack of teachers"}, {ID: "c2", Text: "Poor materials"}},
		Effects:        []models.TreeNode{{ID: "e1", Text: "Low income"}},
	}
	time.Sleep(5 * time.Millisecond)

	got, err := store.UpdateSection(ctx, "planner-1", p.ID, models.SectionProblemTree, tree)
	if err != nil {
		t.Fatalf("UpdateSection failed: %v", err)
	}
	if diff := cmp.Diff(tree, got.Data.ProblemTree); diff != "" {
		t.Errorf("problem tree mismatch (-want +got):\n%s", diff)
	}
	if !got.UpdatedAt.After(p.UpdatedAt) {
		t.Error("expected updated_at to move forward")
	}

	// Other sections are untouched.
	if got.Data.ProblemDefinition.CentralProblem != "" {
		t.Error("unrelated section should stay empty")
	}
}

func TestStore_UpdateSection_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "planner-1", "Errors")

	if _, err := store.UpdateSection(ctx, "planner-1", p.ID, models.Section("budget"), models.Monitoring{}); err != projectstore.ErrUnknownSection {
		t.Errorf("unknown section err = %v", err)
	}
	if _, err := store.UpdateSection(ctx, "planner-1", p.ID, models.SectionMonitoring, models.Logframe{}); err != projectstore.ErrSectionMismatch {
		t.Errorf("mismatched value err = %v", err)
	}
	if _, err := store.UpdateSection(ctx, "planner-2", p.ID, models.SectionMonitoring, models.Monitoring{}); err != mongo.ErrNoDocuments {
		t.Errorf("other owner err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_AdvanceStep_Monotonic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProjectWith(ctx, "planner-1", "Steps", 3, models.ProjectData{})

	tests := []struct {
		step int
		want int
	}{
		{2, 3}, // revisiting an earlier step keeps the reached step
		{3, 3},
		{4, 4},
		{7, 7},
		{1, 7},
	}
	for _, tt := range tests {
		got, err := store.AdvanceStep(ctx, "planner-1", p.ID, tt.step)
		if err != nil {
			t.Fatalf("AdvanceStep(%d) failed: %v", tt.step, err)
		}
		if got != tt.want {
			t.Errorf("AdvanceStep(%d) = %d, want %d", tt.step, got, tt.want)
		}
	}

	for _, bad := range []int{0, 8, -1} {
		if _, err := store.AdvanceStep(ctx, "planner-1", p.ID, bad); err != projectstore.ErrInvalidStep {
			t.Errorf("AdvanceStep(%d) err = %v, want ErrInvalidStep", bad, err)
		}
	}
	if _, err := store.AdvanceStep(ctx, "planner-1", primitive.NewObjectID(), 2); err != mongo.ErrNoDocuments {
		t.Errorf("AdvanceStep(missing) err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "planner-1", "Doomed")

	n, err := store.Delete(ctx, "planner-2", p.ID)
	if err != nil || n != 0 {
		t.Errorf("Delete(other owner) = %d, %v; want 0", n, err)
	}
	n, err = store.Delete(ctx, "planner-1", p.ID)
	if err != nil || n != 1 {
		t.Errorf("Delete(owner) = %d, %v; want 1", n, err)
	}
	if _, err := store.GetByID(ctx, p.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected project to be gone, got %v", err)
	}
}

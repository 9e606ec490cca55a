// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/programdesign/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	firstStep = 1
	lastStep  = 7
)

var (
	ErrDuplicateProjectName = errors.New("a project with this name already exists")
	ErrUnknownSection       = errors.New("unknown project section")
	ErrSectionMismatch      = errors.New("value does not match the section's type")
	ErrInvalidStep          = errors.New("step must be between 1 and 7")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// GetByID finds a project regardless of owner. Service handlers use GetOwned.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetOwned finds a project owned by ownerID. A project owned by someone else
// reports mongo.ErrNoDocuments.
func (s *Store) GetOwned(ctx context.Context, ownerID string, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, ownedFilter(ownerID, id)).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// ListByOwner returns the owner's projects, most recently updated first.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "updated_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new project at step 1 with empty data.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	if p.CurrentStep < firstStep || p.CurrentStep > lastStep {
		p.CurrentStep = firstStep
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Project{}, ErrDuplicateProjectName
		}
		return models.Project{}, err
	}
	return p, nil
}

// UpdateInfo replaces the name and description. A blank name keeps the
// current one; the description can be cleared.
func (s *Store) UpdateInfo(ctx context.Context, ownerID string, id primitive.ObjectID, name, desc string) (models.Project, error) {
	set := bson.M{
		"updated_at":  time.Now().UTC(),
		"description": desc,
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	p, err := s.findAndUpdate(ctx, ownedFilter(ownerID, id), bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Project{}, ErrDuplicateProjectName
		}
		return models.Project{}, err
	}
	return p, nil
}

// UpdateSection replaces one named sub-document of the project's data and
// returns the updated project. value must be the section's model type.
func (s *Store) UpdateSection(ctx context.Context, ownerID string, id primitive.ObjectID, sec models.Section, value any) (models.Project, error) {
	field := sec.Field()
	if field == "" {
		return models.Project{}, ErrUnknownSection
	}
	if !sectionMatches(sec, value) {
		return models.Project{}, ErrSectionMismatch
	}
	return s.findAndUpdate(ctx, ownedFilter(ownerID, id), bson.M{"$set": bson.M{
		"data." + field: value,
		"updated_at":    time.Now().UTC(),
	}})
}

// AdvanceStep records that step was completed. The stored step becomes
// max(stored, step), so completing an earlier step never lowers it. The
// stored value after the update is returned.
func (s *Store) AdvanceStep(ctx context.Context, ownerID string, id primitive.ObjectID, step int) (int, error) {
	if step < firstStep || step > lastStep {
		return 0, ErrInvalidStep
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"current_step": 1})

	var out struct {
		CurrentStep int `bson:"current_step"`
	}
	err := s.c.FindOneAndUpdate(ctx, ownedFilter(ownerID, id), bson.M{
		"$max": bson.M{"current_step": step},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}, opts).Decode(&out)
	if err != nil {
		return 0, err
	}
	return out.CurrentStep, nil
}

// Delete removes a project. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, ownerID string, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, ownedFilter(ownerID, id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) findAndUpdate(ctx context.Context, filter, update bson.M) (models.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func ownedFilter(ownerID string, id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "owner_id": ownerID}
}

func sectionMatches(sec models.Section, v any) bool {
	switch v.(type) {
	case models.ProblemDefinition:
		return sec == models.SectionProblemDefinition
	case models.Stakeholders:
		return sec == models.SectionStakeholders
	case models.ProblemTree:
		return sec == models.SectionProblemTree
	case models.ObjectiveTree:
		return sec == models.SectionObjectiveTree
	case models.ResultsChain:
		return sec == models.SectionResultsChain
	case models.Logframe:
		return sec == models.SectionLogframe
	case models.Monitoring:
		return sec == models.SectionMonitoring
	}
	return false
}

package seed

import (
	"context"
	"testing"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSportsCatalogIntegrity(t *testing.T) {
	slugs := make(map[string]bool)
	for _, sport := range sportsCatalog {
		assert.NotEmpty(t, sport.Name)
		assert.NotEmpty(t, sport.Slug)
		assert.False(t, slugs[sport.Slug], "duplicate slug %q", sport.Slug)
		slugs[sport.Slug] = true
	}
	assert.True(t, slugs["general-fitness"], "fallback sport must exist")
}

func TestExerciseLibraryIntegrity(t *testing.T) {
	knownSlugs := make(map[string]bool)
	for _, sport := range sportsCatalog {
		knownSlugs[sport.Slug] = true
	}
	knownTypes := map[domain.ExerciseType]bool{
		domain.TypeStrength: true, domain.TypeCardio: true, domain.TypeFlexibility: true,
		domain.TypePlyometric: true, domain.TypeBalance: true,
	}

	names := make(map[string]bool)
	for _, e := range exerciseLibrary {
		require.NotEmpty(t, e.Name)
		assert.False(t, names[e.Name], "duplicate exercise %q", e.Name)
		names[e.Name] = true
		assert.True(t, knownTypes[e.Type], "%s has unknown type %q", e.Name, e.Type)

		hasPrimary := false
		for _, m := range e.Muscles {
			assert.NotEmpty(t, m.Group, "%s muscle group", e.Name)
			if m.Role == domain.RolePrimary {
				hasPrimary = true
			}
		}
		assert.True(t, hasPrimary, "%s has no primary muscle", e.Name)

		for _, s := range e.Sports {
			assert.True(t, knownSlugs[s.SportSlug], "%s references unknown sport %q", e.Name, s.SportSlug)
			assert.GreaterOrEqual(t, s.Score, 1, "%s %s score", e.Name, s.SportSlug)
			assert.LessOrEqual(t, s.Score, 10, "%s %s score", e.Name, s.SportSlug)
		}
	}
	assert.GreaterOrEqual(t, len(exerciseLibrary), 50)
}

// fakes sufficient for the idempotence check

type memSportRepo struct{ sports []domain.Sport }

func (r *memSportRepo) Create(ctx context.Context, sport *domain.Sport) (primitive.ObjectID, error) {
	sport.ID = primitive.NewObjectID()
	r.sports = append(r.sports, *sport)
	return sport.ID, nil
}

func (r *memSportRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Sport, error) {
	for i := range r.sports {
		if r.sports[i].ID == id {
			s := r.sports[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memSportRepo) GetBySlug(ctx context.Context, slug string) (*domain.Sport, error) {
	for i := range r.sports {
		if r.sports[i].Slug == slug {
			s := r.sports[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memSportRepo) List(ctx context.Context) ([]domain.Sport, error) {
	return append([]domain.Sport(nil), r.sports...), nil
}

type memExerciseRepo struct{ exercises []domain.Exercise }

func (r *memExerciseRepo) Create(ctx context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	e.ID = primitive.NewObjectID()
	r.exercises = append(r.exercises, *e)
	return e.ID, nil
}

func (r *memExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	return nil, repository.ErrNotFound
}

func (r *memExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	return append([]domain.Exercise(nil), r.exercises...), nil
}

func (r *memExerciseRepo) FindByPrimaryMuscles(ctx context.Context, muscleGroups []string) ([]domain.Exercise, error) {
	return nil, nil
}

func (r *memExerciseRepo) SetVideoObjectKey(ctx context.Context, id primitive.ObjectID, objectKey string) error {
	return nil
}

func (r *memExerciseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.exercises)), nil
}

func TestRunIsIdempotent(t *testing.T) {
	sports := &memSportRepo{}
	exercises := &memExerciseRepo{}

	require.NoError(t, Run(context.Background(), sports, exercises))
	require.NoError(t, Run(context.Background(), sports, exercises))

	assert.Len(t, sports.sports, len(sportsCatalog))
	assert.Len(t, exercises.exercises, len(exerciseLibrary))
}

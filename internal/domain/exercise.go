// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseType classifies an exercise for prescription purposes.
type ExerciseType string

const (
	TypeStrength    ExerciseType = "strength"
	TypeCardio      ExerciseType = "cardio"
	TypeFlexibility ExerciseType = "flexibility"
	TypePlyometric  ExerciseType = "plyometric"
	TypeBalance     ExerciseType = "balance"
)

// MuscleRole marks how strongly an exercise targets a muscle group.
type MuscleRole string

const (
	RolePrimary   MuscleRole = "primary"
	RoleSecondary MuscleRole = "secondary"
)

// ExerciseMuscle is one (muscle group, role) pair on an exercise.
type ExerciseMuscle struct {
	Group string     `bson:"group" json:"group"` // e.g. "quads", "upper_back"
	Role  MuscleRole `bson:"role" json:"role"`
}

// SportRelevance rates an exercise's suitability for a sport (1-10).
// Keyed by sport slug so the library is portable across databases.
type SportRelevance struct {
	SportSlug string `bson:"sportSlug" json:"sportSlug"`
	Score     int    `bson:"score" json:"score"`
}

// Exercise is a library entry. The library is read-only to the plan
// engine; it is written only by the seed command and the demo-video flow.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Type        ExerciseType       `bson:"type" json:"type"`
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g. "barbell", "bodyweight"
	IsBilateral bool               `bson:"isBilateral" json:"isBilateral"`
	Muscles     []ExerciseMuscle   `bson:"muscles" json:"muscles"`
	Sports      []SportRelevance   `bson:"sports,omitempty" json:"sports,omitempty"`

	// VideoObjectKey points at the demo video in object storage, if one
	// has been uploaded. Clients get a presigned URL, never the key.
	VideoObjectKey string `bson:"videoObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RelevanceFor returns the exercise's relevance score for a sport slug.
// Exercises with no score for the sport rank lowest.
func (e *Exercise) RelevanceFor(sportSlug string) int {
	for _, s := range e.Sports {
		if s.SportSlug == sportSlug {
			return s.Score
		}
	}
	return 0
}

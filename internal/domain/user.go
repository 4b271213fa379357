package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessLevel drives the default weekly training-day cap during plan
// generation when the user has not set an explicit preference.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// User represents an athlete training toward a goal.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"`

	// Profile fields the plan generator reads.
	FitnessLevel        FitnessLevel `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`
	TrainingDaysPerWeek *int         `bson:"trainingDaysPerWeek,omitempty" json:"trainingDaysPerWeek,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TrainingDayCap returns the user's weekly training-day limit: the
// explicit preference when set, otherwise a fitness-level default.
// A zero return means no cap.
func (u *User) TrainingDayCap() int {
	if u.TrainingDaysPerWeek != nil && *u.TrainingDaysPerWeek > 0 {
		return *u.TrainingDaysPerWeek
	}
	switch u.FitnessLevel {
	case LevelBeginner:
		return 3
	case LevelIntermediate:
		return 4
	case LevelAdvanced:
		return 6
	default:
		return 0
	}
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogStatus describes how a logged workout went.
type LogStatus string

const (
	LogCompleted LogStatus = "completed"
	LogPartial   LogStatus = "partial"
	LogSkipped   LogStatus = "skipped"
)

// WorkoutLog is the user's record of performing (or skipping) a workout.
// At most one per (workout, user); resubmission updates in place.
type WorkoutLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutID       primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	Date            string             `bson:"date" json:"date"` // YYYY-MM-DD
	Status          LogStatus          `bson:"status" json:"status"`
	DurationMinutes int                `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	PerceivedEffort int                `bson:"perceivedEffort,omitempty" json:"perceivedEffort,omitempty"` // 1-10 RPE
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseSetLog records one performed set of an exercise within a
// logged workout. Upserted by (workoutLogId, exerciseId, setNumber).
type ExerciseSetLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutLogID    primitive.ObjectID `bson:"workoutLogId" json:"workoutLogId"`
	ExerciseID      primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	SetNumber       int                `bson:"setNumber" json:"setNumber"`
	RepsCompleted   int                `bson:"repsCompleted,omitempty" json:"repsCompleted,omitempty"`
	WeightKg        float64            `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	DurationSeconds int                `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

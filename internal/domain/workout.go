package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus marks whether a scheduled session still stands.
type WorkoutStatus string

const (
	WorkoutScheduled WorkoutStatus = "scheduled"
	WorkoutSkipped   WorkoutStatus = "skipped"
)

// Workout is a single scheduled session within a training week.
// DayOfWeek is 0=Monday through 6=Sunday. The generator may place more
// than one workout on a day via OrderInDay; the day-swap operation is
// what enforces one per day after the fact.
type Workout struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WeekID           primitive.ObjectID `bson:"weekId" json:"weekId"`
	Name             string             `bson:"name" json:"name"`
	Focus            string             `bson:"focus,omitempty" json:"focus,omitempty"`
	DayOfWeek        int                `bson:"dayOfWeek" json:"dayOfWeek"`
	OrderInDay       int                `bson:"orderInDay" json:"orderInDay"`
	EstimatedMinutes int                `bson:"estimatedMinutes,omitempty" json:"estimatedMinutes,omitempty"`
	Status           WorkoutStatus      `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutExercise prescribes one exercise within a workout.
// OrderInWorkout is 1-indexed and contiguous; ordering is significant.
// Reps is free-form text: a numeric range, a time, or "AMRAP".
type WorkoutExercise struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID      primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseID     primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	OrderInWorkout int                `bson:"orderInWorkout" json:"orderInWorkout"`
	Sets           int                `bson:"sets" json:"sets"`
	Reps           string             `bson:"reps" json:"reps"`
	RestSeconds    int                `bson:"restSeconds" json:"restSeconds"`
}

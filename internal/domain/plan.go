// internal/domain/plan.go
package domain

import (
	"time"

	"athme/training-app/internal/periodization"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanStatus tracks the lifecycle of a training plan. Exactly one active
// plan may exist per goal; regeneration deletes the previous one.
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanPaused    PlanStatus = "paused"
	PlanCancelled PlanStatus = "cancelled"
)

// TrainingPlan is a generated, periodized schedule for one goal.
// StartDate is always a Monday; dates are YYYY-MM-DD calendar dates.
type TrainingPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	GoalID     primitive.ObjectID `bson:"goalId" json:"goalId"`
	Name       string             `bson:"name" json:"name"`
	StartDate  string             `bson:"startDate" json:"startDate"`
	EndDate    string             `bson:"endDate" json:"endDate"`
	TotalWeeks int                `bson:"totalWeeks" json:"totalWeeks"`
	Status     PlanStatus         `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Score bounds for stored week targets. Generation produces scores on a
// 1-10 scale and stores them multiplied by ScoreScale; adaptation then
// works directly on the stored scale.
const (
	ScoreScale = 10
	ScoreMin   = 1
	ScoreMax   = 100
)

// ClampScore bounds a stored volume/intensity score to [ScoreMin, ScoreMax].
func ClampScore(v int) int {
	if v < ScoreMin {
		return ScoreMin
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return v
}

// TrainingWeek is one week of a plan. WeekNumber is 1-indexed and
// contiguous; StartDate advances by exactly 7 days between consecutive
// weeks. Volume and intensity are stored on the 1-100 scale.
type TrainingWeek struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PlanID          primitive.ObjectID  `bson:"planId" json:"planId"`
	WeekNumber      int                 `bson:"weekNumber" json:"weekNumber"`
	Phase           periodization.Phase `bson:"phase" json:"phase"`
	StartDate       string              `bson:"startDate" json:"startDate"`
	VolumeScore     int                 `bson:"volumeScore" json:"volumeScore"`
	IntensityScore  int                 `bson:"intensityScore" json:"intensityScore"`
	WorkoutsPerWeek int                 `bson:"workoutsPerWeek" json:"workoutsPerWeek"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

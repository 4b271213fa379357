package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SportCategory groups sports by season.
type SportCategory string

const (
	CategoryWinter    SportCategory = "winter"
	CategorySummer    SportCategory = "summer"
	CategoryYearRound SportCategory = "year_round"
)

// Sport is a catalog entry. Slug is the stable identifier the workout
// templates and exercise relevance scores are keyed by.
type Sport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"` // Unique
	Category    SportCategory      `bson:"category" json:"category"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

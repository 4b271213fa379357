package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckInRating is the user's subjective read on a training week.
type CheckInRating string

const (
	RatingTooEasy CheckInRating = "too_easy"
	RatingOnTrack CheckInRating = "on_track"
	RatingTooHard CheckInRating = "too_hard"
)

// Valid reports whether r is one of the known ratings.
func (r CheckInRating) Valid() bool {
	switch r {
	case RatingTooEasy, RatingOnTrack, RatingTooHard:
		return true
	}
	return false
}

// WeeklyCheckIn records a user's rating for one training week. At most
// one exists per (week, user); a resubmission updates it in place.
type WeeklyCheckIn struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WeekID    primitive.ObjectID `bson:"weekId" json:"weekId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    CheckInRating      `bson:"rating" json:"rating"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

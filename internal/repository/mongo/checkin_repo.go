// internal/repository/mongo/checkin_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const checkInCollectionName = "weekly_check_ins"

// mongoCheckInRepository implements repository.CheckInRepository
type mongoCheckInRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckInRepository creates a new CheckIn repository.
func NewMongoCheckInRepository(db *mongo.Database) repository.CheckInRepository {
	return &mongoCheckInRepository{
		collection: db.Collection(checkInCollectionName),
	}
}

// Upsert inserts or updates the check-in for (weekId, userId). The
// unique index on that pair makes a concurrent double-submit collapse
// into one document.
func (r *mongoCheckInRepository) Upsert(ctx context.Context, checkIn *domain.WeeklyCheckIn) (primitive.ObjectID, error) {
	if checkIn.WeekID == primitive.NilObjectID || checkIn.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("check-in requires weekId and userId")
	}
	if !checkIn.Rating.Valid() {
		return primitive.NilObjectID, errors.New("invalid check-in rating")
	}

	now := time.Now().UTC()
	filter := bson.M{"weekId": checkIn.WeekID, "userId": checkIn.UserID}
	update := bson.M{
		"$set": bson.M{
			"rating":    checkIn.Rating,
			"notes":     checkIn.Notes,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"weekId":    checkIn.WeekID,
			"userId":    checkIn.UserID,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.WeeklyCheckIn
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return primitive.NilObjectID, err
	}
	*checkIn = saved
	return saved.ID, nil
}

// GetByWeekAndUser retrieves the check-in for (weekId, userId).
func (r *mongoCheckInRepository) GetByWeekAndUser(ctx context.Context, weekID, userID primitive.ObjectID) (*domain.WeeklyCheckIn, error) {
	var checkIn domain.WeeklyCheckIn
	filter := bson.M{"weekId": weekID, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&checkIn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &checkIn, nil
}

// EnsureCheckInIndexes creates necessary indexes. Call during startup.
func EnsureCheckInIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weekId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

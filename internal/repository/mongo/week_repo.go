// internal/repository/mongo/week_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainingWeekCollectionName = "training_weeks"

// mongoTrainingWeekRepository implements repository.TrainingWeekRepository
type mongoTrainingWeekRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingWeekRepository creates a new TrainingWeek repository.
func NewMongoTrainingWeekRepository(db *mongo.Database) repository.TrainingWeekRepository {
	return &mongoTrainingWeekRepository{
		collection: db.Collection(trainingWeekCollectionName),
	}
}

// Create inserts a new training week.
func (r *mongoTrainingWeekRepository) Create(ctx context.Context, week *domain.TrainingWeek) (primitive.ObjectID, error) {
	if week.PlanID == primitive.NilObjectID || week.WeekNumber < 1 || week.StartDate == "" {
		return primitive.NilObjectID, errors.New("week requires planId, weekNumber, and startDate")
	}
	week.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	week.CreatedAt = now
	week.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, week)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted week ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single training week.
func (r *mongoTrainingWeekRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingWeek, error) {
	var week domain.TrainingWeek
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&week)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &week, nil
}

// GetByPlanID returns all weeks of a plan ordered by week number.
func (r *mongoTrainingWeekRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingWeek, error) {
	var weeks []domain.TrainingWeek
	filter := bson.M{"planId": planID}
	findOptions := options.Find().SetSort(bson.D{{Key: "weekNumber", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

// GetCurrent returns the most recent week whose startDate <= date.
// Lexicographic comparison is correct because dates are YYYY-MM-DD.
func (r *mongoTrainingWeekRepository) GetCurrent(ctx context.Context, planID primitive.ObjectID, date string) (*domain.TrainingWeek, error) {
	var week domain.TrainingWeek
	filter := bson.M{
		"planId":    planID,
		"startDate": bson.M{"$lte": date},
	}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "startDate", Value: -1}})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&week)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &week, nil
}

// GetFutureNonRecovery returns weeks starting strictly after afterDate
// whose phase is not recovery, ordered soonest first. Recovery weeks are
// excluded so adaptation can never compound onto a deload.
func (r *mongoTrainingWeekRepository) GetFutureNonRecovery(ctx context.Context, planID primitive.ObjectID, afterDate string) ([]domain.TrainingWeek, error) {
	var weeks []domain.TrainingWeek
	filter := bson.M{
		"planId":    planID,
		"startDate": bson.M{"$gt": afterDate},
		"phase":     bson.M{"$ne": periodization.PhaseRecovery},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

// UpdateTargets overwrites a week's phase, scores, and notes.
func (r *mongoTrainingWeekRepository) UpdateTargets(ctx context.Context, id primitive.ObjectID, phase periodization.Phase, volumeScore, intensityScore int, notes string) error {
	update := bson.M{"$set": bson.M{
		"phase":          phase,
		"volumeScore":    volumeScore,
		"intensityScore": intensityScore,
		"notes":          notes,
		"updatedAt":      time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainingWeekIndexes creates necessary indexes. Call during startup.
func EnsureTrainingWeekIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "weekNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Adaptation query: future weeks by start date.
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

// internal/repository/mongo/plan_repo.go
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

const trainingPlanCollectionName = "training_plans"

// mongoTrainingPlanRepository implements repository.TrainingPlanRepository
type mongoTrainingPlanRepository struct {
	collection *mongo.Collection
	// Held for the cascading delete across the plan's child collections.
	db *mongo.Database
}

// NewMongoTrainingPlanRepository creates a new TrainingPlan repository.
func NewMongoTrainingPlanRepository(db *mongo.Database) repository.TrainingPlanRepository {
	return &mongoTrainingPlanRepository{
		collection: db.Collection(trainingPlanCollectionName),
		db:         db,
	}
}

// Create inserts a new training plan.
func (r *mongoTrainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID || plan.GoalID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan requires userId and goalId")
	}
	plan.ID = primitive.NewObjectID()
	if plan.Status == "" {
		plan.Status = domain.PlanActive
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single training plan by its ID.
func (r *mongoTrainingPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetActiveByGoalID returns the goal's active plan, or ErrNotFound.
func (r *mongoTrainingPlanRepository) GetActiveByGoalID(ctx context.Context, goalID primitive.ObjectID) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	filter := bson.M{"goalId": goalID, "status": domain.PlanActive}
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetActiveByUserID returns the user's active plan with the earliest end
// date, or ErrNotFound.
func (r *mongoTrainingPlanRepository) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	filter := bson.M{"userId": userID, "status": domain.PlanActive}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "endDate", Value: 1}})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// DeleteCascade removes a plan and everything hanging off it: weeks,
// workouts, and workout exercises. Deletion order is leaves-first so a
// concurrent reader can at worst see a plan missing children, never
// orphaned children pointing at a live plan.
func (r *mongoTrainingPlanRepository) DeleteCascade(ctx context.Context, planID primitive.ObjectID) error {
	if planID == primitive.NilObjectID {
		return errors.New("plan ID is required for deletion")
	}

	weekIDs, err := childIDs(ctx, r.db.Collection(trainingWeekCollectionName), bson.M{"planId": planID})
	if err != nil {
		return err
	}

	if len(weekIDs) > 0 {
		workoutIDs, err := childIDs(ctx, r.db.Collection(workoutCollectionName), bson.M{"weekId": bson.M{"$in": weekIDs}})
		if err != nil {
			return err
		}
		if len(workoutIDs) > 0 {
			if _, err := r.db.Collection(workoutExerciseCollectionName).DeleteMany(ctx, bson.M{"workoutId": bson.M{"$in": workoutIDs}}); err != nil {
				return err
			}
			if _, err := r.db.Collection(workoutCollectionName).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": workoutIDs}}); err != nil {
				return err
			}
		}
		if _, err := r.db.Collection(trainingWeekCollectionName).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": weekIDs}}); err != nil {
			return err
		}
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": planID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// childIDs collects the _id values matching a filter.
func childIDs(ctx context.Context, collection *mongo.Collection, filter bson.M) ([]primitive.ObjectID, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

// EnsureTrainingPlanIndexes creates necessary indexes. Call during startup.
func EnsureTrainingPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// The regeneration path: find the active plan for a goal.
			Keys:    bson.D{{Key: "goalId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

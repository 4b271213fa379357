// internal/repository/mongo/workout_repo.go
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

const (
	workoutCollectionName         = "workouts"
	workoutExerciseCollectionName = "workout_exercises"
)

// mongoWorkoutRepository implements repository.WorkoutRepository over the
// workouts and workout_exercises collections.
type mongoWorkoutRepository struct {
	workouts  *mongo.Collection
	exercises *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		workouts:  db.Collection(workoutCollectionName),
		exercises: db.Collection(workoutExerciseCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.WeekID == primitive.NilObjectID || workout.Name == "" {
		return primitive.NilObjectID, errors.New("workout requires weekId and name")
	}
	if workout.DayOfWeek < 0 || workout.DayOfWeek > 6 {
		return primitive.NilObjectID, errors.New("dayOfWeek must be in 0..6")
	}
	workout.ID = primitive.NewObjectID()
	if workout.Status == "" {
		workout.Status = domain.WorkoutScheduled
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.workouts.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.workouts.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByWeekID returns a week's workouts ordered by day, then order-in-day.
func (r *mongoWorkoutRepository) GetByWeekID(ctx context.Context, weekID primitive.ObjectID) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{"weekId": weekID}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "dayOfWeek", Value: 1},
		{Key: "orderInDay", Value: 1},
	})

	cursor, err := r.workouts.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetByWeekAndDay returns the workouts scheduled on one day of a week.
func (r *mongoWorkoutRepository) GetByWeekAndDay(ctx context.Context, weekID primitive.ObjectID, dayOfWeek int) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{"weekId": weekID, "dayOfWeek": dayOfWeek}
	findOptions := options.Find().SetSort(bson.D{{Key: "orderInDay", Value: 1}})

	cursor, err := r.workouts.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateDay moves a workout to another day of its week.
func (r *mongoWorkoutRepository) UpdateDay(ctx context.Context, id primitive.ObjectID, dayOfWeek int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return errors.New("dayOfWeek must be in 0..6")
	}
	update := bson.M{"$set": bson.M{"dayOfWeek": dayOfWeek, "updatedAt": time.Now().UTC()}}
	result, err := r.workouts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateStatus sets a workout's status.
func (r *mongoWorkoutRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.WorkoutStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	result, err := r.workouts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// InsertExercises bulk-inserts a workout's prescribed exercises.
func (r *mongoWorkoutRepository) InsertExercises(ctx context.Context, exercises []domain.WorkoutExercise) error {
	if len(exercises) == 0 {
		return nil
	}
	docs := make([]interface{}, len(exercises))
	for i := range exercises {
		if exercises[i].ID == primitive.NilObjectID {
			exercises[i].ID = primitive.NewObjectID()
		}
		docs[i] = exercises[i]
	}
	_, err := r.exercises.InsertMany(ctx, docs)
	return err
}

// GetExercisesByWorkoutID returns a workout's exercises in prescription
// order.
func (r *mongoWorkoutRepository) GetExercisesByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	var exercises []domain.WorkoutExercise
	filter := bson.M{"workoutId": workoutID}
	findOptions := options.Find().SetSort(bson.D{{Key: "orderInWorkout", Value: 1}})

	cursor, err := r.exercises.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) {
	_, _ = db.Collection(workoutCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weekId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index(),
		},
	})
	_, _ = db.Collection(workoutExerciseCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "orderInWorkout", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

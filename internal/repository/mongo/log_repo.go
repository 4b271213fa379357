// internal/repository/mongo/log_repo.go
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
	workoutLogCollectionName = "workout_logs"
	setLogCollectionName     = "exercise_set_logs"
)

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	logs    *mongo.Collection
	setLogs *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new WorkoutLog repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		logs:    db.Collection(workoutLogCollectionName),
		setLogs: db.Collection(setLogCollectionName),
	}
}

// UpsertLog inserts or updates the log for (workoutId, userId).
func (r *mongoWorkoutLogRepository) UpsertLog(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.WorkoutID == primitive.NilObjectID || log.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout log requires workoutId and userId")
	}

	now := time.Now().UTC()
	filter := bson.M{"workoutId": log.WorkoutID, "userId": log.UserID}
	update := bson.M{
		"$set": bson.M{
			"date":            log.Date,
			"status":          log.Status,
			"durationMinutes": log.DurationMinutes,
			"perceivedEffort": log.PerceivedEffort,
			"notes":           log.Notes,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"workoutId": log.WorkoutID,
			"userId":    log.UserID,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.WorkoutLog
	if err := r.logs.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return primitive.NilObjectID, err
	}
	*log = saved
	return saved.ID, nil
}

// GetLogByWorkoutAndUser retrieves the log for (workoutId, userId).
func (r *mongoWorkoutLogRepository) GetLogByWorkoutAndUser(ctx context.Context, workoutID, userID primitive.ObjectID) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	filter := bson.M{"workoutId": workoutID, "userId": userID}

	err := r.logs.FindOne(ctx, filter).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// UpsertSetLog inserts or updates one performed set, keyed by
// (workoutLogId, exerciseId, setNumber).
func (r *mongoWorkoutLogRepository) UpsertSetLog(ctx context.Context, setLog *domain.ExerciseSetLog) (primitive.ObjectID, error) {
	if setLog.WorkoutLogID == primitive.NilObjectID || setLog.ExerciseID == primitive.NilObjectID || setLog.SetNumber < 1 {
		return primitive.NilObjectID, errors.New("set log requires workoutLogId, exerciseId, and a positive setNumber")
	}

	filter := bson.M{
		"workoutLogId": setLog.WorkoutLogID,
		"exerciseId":   setLog.ExerciseID,
		"setNumber":    setLog.SetNumber,
	}
	update := bson.M{
		"$set": bson.M{
			"repsCompleted":   setLog.RepsCompleted,
			"weightKg":        setLog.WeightKg,
			"durationSeconds": setLog.DurationSeconds,
			"notes":           setLog.Notes,
		},
		"$setOnInsert": bson.M{
			"workoutLogId": setLog.WorkoutLogID,
			"exerciseId":   setLog.ExerciseID,
			"setNumber":    setLog.SetNumber,
			"createdAt":    time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.ExerciseSetLog
	if err := r.setLogs.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return primitive.NilObjectID, err
	}
	*setLog = saved
	return saved.ID, nil
}

// GetSetLogs returns the set logs of a workout log in set order.
func (r *mongoWorkoutLogRepository) GetSetLogs(ctx context.Context, workoutLogID primitive.ObjectID) ([]domain.ExerciseSetLog, error) {
	var logs []domain.ExerciseSetLog
	filter := bson.M{"workoutLogId": workoutLogID}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "exerciseId", Value: 1},
		{Key: "setNumber", Value: 1},
	})

	cursor, err := r.setLogs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetHistory returns the user's most recent workout logs, newest first.
func (r *mongoWorkoutLogRepository) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []domain.WorkoutLog
	filter := bson.M{"userId": userID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.logs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutLogIndexes(ctx context.Context, db *mongo.Database) {
	_, _ = db.Collection(workoutLogCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	})
	_, _ = db.Collection(setLogCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "workoutLogId", Value: 1},
				{Key: "exerciseId", Value: 1},
				{Key: "setNumber", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type logFixture struct {
	svc       *logService
	userID    primitive.ObjectID
	workoutID primitive.ObjectID
	logs      *fakeWorkoutLogRepo
}

func newLogFixture(t *testing.T) *logFixture {
	t.Helper()

	logs := &fakeWorkoutLogRepo{}
	workouts := &fakeWorkoutRepo{}
	weeks := &fakeWeekRepo{}
	plans := &fakePlanRepo{}

	userID := primitive.NewObjectID()
	planID, err := plans.Create(context.Background(), &domain.TrainingPlan{UserID: userID, Status: domain.PlanActive})
	require.NoError(t, err)
	weekID, err := weeks.Create(context.Background(), &domain.TrainingWeek{
		PlanID: planID, WeekNumber: 1, Phase: periodization.PhaseBase, StartDate: "2026-01-05",
	})
	require.NoError(t, err)
	workoutID, err := workouts.Create(context.Background(), &domain.Workout{
		WeekID: weekID, Name: "Lower Body Power", DayOfWeek: 0, OrderInDay: 1, Status: domain.WorkoutScheduled,
	})
	require.NoError(t, err)

	svc := NewLogService(logs, workouts, weeks, plans).(*logService)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)
	}
	return &logFixture{svc: svc, userID: userID, workoutID: workoutID, logs: logs}
}

func TestLogWorkoutUpserts(t *testing.T) {
	f := newLogFixture(t)

	first, err := f.svc.LogWorkout(context.Background(), f.userID, f.workoutID, LogInput{
		Status: domain.LogCompleted, DurationMinutes: 55, PerceivedEffort: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", first.Date)

	// Resubmission updates the same record.
	second, err := f.svc.LogWorkout(context.Background(), f.userID, f.workoutID, LogInput{
		Status: domain.LogPartial, Notes: "cut short",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.logs.logs, 1)
	assert.Equal(t, domain.LogPartial, f.logs.logs[0].Status)
}

func TestLogWorkoutValidation(t *testing.T) {
	f := newLogFixture(t)

	_, err := f.svc.LogWorkout(context.Background(), f.userID, f.workoutID, LogInput{Status: domain.LogStatus("crushed")})
	assert.ErrorIs(t, err, ErrInvalidLogStatus)

	_, err = f.svc.LogWorkout(context.Background(), primitive.NewObjectID(), f.workoutID, LogInput{Status: domain.LogCompleted})
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, err = f.svc.LogWorkout(context.Background(), f.userID, primitive.NewObjectID(), LogInput{Status: domain.LogCompleted})
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestLogSetCreatesPartialLogWhenMissing(t *testing.T) {
	f := newLogFixture(t)
	exerciseID := primitive.NewObjectID()

	err := f.svc.LogSet(context.Background(), f.userID, f.workoutID, SetLogInput{
		ExerciseID: exerciseID, SetNumber: 1, RepsCompleted: 10, WeightKg: 60,
	})
	require.NoError(t, err)

	detail, err := f.svc.GetLog(context.Background(), f.userID, f.workoutID)
	require.NoError(t, err)
	assert.Equal(t, domain.LogPartial, detail.Log.Status)
	require.Len(t, detail.Sets, 1)
	assert.Equal(t, 10, detail.Sets[0].RepsCompleted)

	// Same set number upserts in place.
	err = f.svc.LogSet(context.Background(), f.userID, f.workoutID, SetLogInput{
		ExerciseID: exerciseID, SetNumber: 1, RepsCompleted: 12, WeightKg: 60,
	})
	require.NoError(t, err)
	detail, err = f.svc.GetLog(context.Background(), f.userID, f.workoutID)
	require.NoError(t, err)
	require.Len(t, detail.Sets, 1)
	assert.Equal(t, 12, detail.Sets[0].RepsCompleted)

	err = f.svc.LogSet(context.Background(), f.userID, f.workoutID, SetLogInput{ExerciseID: exerciseID, SetNumber: 0})
	assert.Error(t, err)
}

func TestGetLogNotFound(t *testing.T) {
	f := newLogFixture(t)
	_, err := f.svc.GetLog(context.Background(), f.userID, f.workoutID)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestGetHistoryClampsLimit(t *testing.T) {
	f := newLogFixture(t)

	_, err := f.svc.LogWorkout(context.Background(), f.userID, f.workoutID, LogInput{Status: domain.LogCompleted})
	require.NoError(t, err)

	history, err := f.svc.GetHistory(context.Background(), f.userID, -5)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

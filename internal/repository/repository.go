package repository

import (
	"context"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TransactionManager runs a function as one logical unit of work against
// the persistence layer. Plan generation and multi-week adaptation run
// inside it so readers never observe a half-written plan.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines access to user/profile data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, level domain.FitnessLevel, trainingDays *int) error
}

// SportRepository defines access to the sport catalog.
type SportRepository interface {
	Create(ctx context.Context, sport *domain.Sport) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Sport, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Sport, error)
	List(ctx context.Context) ([]domain.Sport, error)
}

// GoalRepository defines access to goal data.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error)
	GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.GoalStatus) error
}

// ExerciseRepository defines access to the exercise library. The library
// is read-only to the plan engine; writes come from seeding and the
// demo-video flow.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	// FindByPrimaryMuscles returns exercises carrying a primary role for
	// at least one of the given muscle groups, in stable insertion order.
	FindByPrimaryMuscles(ctx context.Context, muscleGroups []string) ([]domain.Exercise, error)
	SetVideoObjectKey(ctx context.Context, id primitive.ObjectID, objectKey string) error
	Count(ctx context.Context) (int64, error)
}

// TrainingPlanRepository defines access to training plan data.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetActiveByGoalID(ctx context.Context, goalID primitive.ObjectID) (*domain.TrainingPlan, error)
	GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingPlan, error)
	// DeleteCascade removes the plan and all of its weeks, workouts, and
	// workout exercises.
	DeleteCascade(ctx context.Context, planID primitive.ObjectID) error
}

// TrainingWeekRepository defines access to training week data.
type TrainingWeekRepository interface {
	Create(ctx context.Context, week *domain.TrainingWeek) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingWeek, error)
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingWeek, error)
	// GetCurrent returns the most recent week of the plan whose start
	// date is on or before the given date, or ErrNotFound.
	GetCurrent(ctx context.Context, planID primitive.ObjectID, date string) (*domain.TrainingWeek, error)
	// GetFutureNonRecovery returns the plan's weeks starting strictly
	// after the given date whose phase is not recovery, ordered by start
	// date ascending.
	GetFutureNonRecovery(ctx context.Context, planID primitive.ObjectID, afterDate string) ([]domain.TrainingWeek, error)
	// UpdateTargets overwrites a week's phase, scores, and notes. Used by
	// check-in adaptation only.
	UpdateTargets(ctx context.Context, id primitive.ObjectID, phase periodization.Phase, volumeScore, intensityScore int, notes string) error
}

// WorkoutRepository defines access to workouts and their prescribed
// exercises.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByWeekID(ctx context.Context, weekID primitive.ObjectID) ([]domain.Workout, error)
	GetByWeekAndDay(ctx context.Context, weekID primitive.ObjectID, dayOfWeek int) ([]domain.Workout, error)
	UpdateDay(ctx context.Context, id primitive.ObjectID, dayOfWeek int) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.WorkoutStatus) error

	InsertExercises(ctx context.Context, exercises []domain.WorkoutExercise) error
	GetExercisesByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error)
}

// CheckInRepository defines access to weekly check-ins.
type CheckInRepository interface {
	// Upsert inserts or replaces the check-in for (weekId, userId) and
	// returns its id.
	Upsert(ctx context.Context, checkIn *domain.WeeklyCheckIn) (primitive.ObjectID, error)
	GetByWeekAndUser(ctx context.Context, weekID, userID primitive.ObjectID) (*domain.WeeklyCheckIn, error)
}

// WorkoutLogRepository defines access to workout and set logs.
type WorkoutLogRepository interface {
	UpsertLog(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetLogByWorkoutAndUser(ctx context.Context, workoutID, userID primitive.ObjectID) (*domain.WorkoutLog, error)
	UpsertSetLog(ctx context.Context, setLog *domain.ExerciseSetLog) (primitive.ObjectID, error)
	GetSetLogs(ctx context.Context, workoutLogID primitive.ObjectID) ([]domain.ExerciseSetLog, error)
	GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error)
}

package service

import (
	"context"
	"errors"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidLogStatus = errors.New("status must be completed, partial, or skipped")
	ErrLogNotFound      = errors.New("workout log not found")
)

// LogInput is the caller's record of one performed workout.
type LogInput struct {
	Status          domain.LogStatus
	DurationMinutes int
	PerceivedEffort int
	Notes           string
}

// SetLogInput records one performed set.
type SetLogInput struct {
	ExerciseID      primitive.ObjectID
	SetNumber       int
	RepsCompleted   int
	WeightKg        float64
	DurationSeconds int
	Notes           string
}

// LogDetail is a workout log with its set logs.
type LogDetail struct {
	Log  domain.WorkoutLog       `json:"log"`
	Sets []domain.ExerciseSetLog `json:"sets"`
}

// LogService records what the user actually did.
type LogService interface {
	// LogWorkout upserts the log for (workout, user).
	LogWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input LogInput) (*domain.WorkoutLog, error)
	// LogSet upserts one set row under the workout's log, creating the
	// log as partial if it does not exist yet.
	LogSet(ctx context.Context, userID, workoutID primitive.ObjectID, input SetLogInput) error
	GetLog(ctx context.Context, userID, workoutID primitive.ObjectID) (*LogDetail, error)
	// GetHistory returns the user's most recent logs, newest first.
	GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error)
}

type logService struct {
	logRepo     repository.WorkoutLogRepository
	workoutRepo repository.WorkoutRepository
	weekRepo    repository.TrainingWeekRepository
	planRepo    repository.TrainingPlanRepository

	now func() time.Time
}

// NewLogService creates a new instance of logService.
func NewLogService(logRepo repository.WorkoutLogRepository, workoutRepo repository.WorkoutRepository, weekRepo repository.TrainingWeekRepository, planRepo repository.TrainingPlanRepository) LogService {
	return &logService{
		logRepo:     logRepo,
		workoutRepo: workoutRepo,
		weekRepo:    weekRepo,
		planRepo:    planRepo,
		now:         time.Now,
	}
}

func (s *logService) LogWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input LogInput) (*domain.WorkoutLog, error) {
	switch input.Status {
	case domain.LogCompleted, domain.LogPartial, domain.LogSkipped:
	default:
		return nil, ErrInvalidLogStatus
	}
	if err := s.checkOwnership(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	log := &domain.WorkoutLog{
		UserID:          userID,
		WorkoutID:       workoutID,
		Date:            s.now().UTC().Format(periodization.DateLayout),
		Status:          input.Status,
		DurationMinutes: input.DurationMinutes,
		PerceivedEffort: input.PerceivedEffort,
		Notes:           input.Notes,
	}
	id, err := s.logRepo.UpsertLog(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = id
	return log, nil
}

func (s *logService) LogSet(ctx context.Context, userID, workoutID primitive.ObjectID, input SetLogInput) error {
	if input.SetNumber < 1 {
		return errors.New("setNumber must be positive")
	}
	if err := s.checkOwnership(ctx, userID, workoutID); err != nil {
		return err
	}

	log, err := s.logRepo.GetLogByWorkoutAndUser(ctx, workoutID, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		// Logging a set before the workout itself opens a partial log.
		created, err := s.LogWorkout(ctx, userID, workoutID, LogInput{Status: domain.LogPartial})
		if err != nil {
			return err
		}
		log = created
	}

	setLog := &domain.ExerciseSetLog{
		WorkoutLogID:    log.ID,
		ExerciseID:      input.ExerciseID,
		SetNumber:       input.SetNumber,
		RepsCompleted:   input.RepsCompleted,
		WeightKg:        input.WeightKg,
		DurationSeconds: input.DurationSeconds,
		Notes:           input.Notes,
	}
	_, err = s.logRepo.UpsertSetLog(ctx, setLog)
	return err
}

func (s *logService) GetLog(ctx context.Context, userID, workoutID primitive.ObjectID) (*LogDetail, error) {
	if err := s.checkOwnership(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	log, err := s.logRepo.GetLogByWorkoutAndUser(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	sets, err := s.logRepo.GetSetLogs(ctx, log.ID)
	if err != nil {
		return nil, err
	}
	return &LogDetail{Log: *log, Sets: sets}, nil
}

func (s *logService) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.logRepo.GetHistory(ctx, userID, limit)
}

// checkOwnership walks workout -> week -> plan and compares the owner.
func (s *logService) checkOwnership(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	week, err := s.weekRepo.GetByID(ctx, workout.WeekID)
	if err != nil {
		return ErrWorkoutNotFound
	}
	plan, err := s.planRepo.GetByID(ctx, week.PlanID)
	if err != nil {
		return ErrWorkoutNotFound
	}
	if plan.UserID != userID {
		return ErrWorkoutNotFound
	}
	return nil
}

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
	ErrInvalidTargetDate = errors.New("targetDate must be a future YYYY-MM-DD date")
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalService manages a user's goals.
type GoalService interface {
	CreateGoal(ctx context.Context, userID primitive.ObjectID, sportSlug, name, description, targetDate string) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error)
	GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error)
	UpdateGoalStatus(ctx context.Context, userID, goalID primitive.ObjectID, status domain.GoalStatus) error
	ListSports(ctx context.Context) ([]domain.Sport, error)
}

type goalService struct {
	goalRepo  repository.GoalRepository
	sportRepo repository.SportRepository

	now func() time.Time
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository, sportRepo repository.SportRepository) GoalService {
	return &goalService{goalRepo: goalRepo, sportRepo: sportRepo, now: time.Now}
}

// CreateGoal validates the target date and sport, then stores the goal
// as active.
func (s *goalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, sportSlug, name, description, targetDate string) (*domain.Goal, error) {
	parsed, err := time.Parse(periodization.DateLayout, targetDate)
	if err != nil {
		return nil, ErrInvalidTargetDate
	}
	today := s.now().UTC().Format(periodization.DateLayout)
	if parsed.Format(periodization.DateLayout) <= today {
		return nil, ErrInvalidTargetDate
	}

	sport, err := s.sportRepo.GetBySlug(ctx, sportSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}

	goal := &domain.Goal{
		UserID:      userID,
		SportID:     sport.ID,
		Name:        name,
		Description: description,
		TargetDate:  targetDate,
		Status:      domain.GoalActive,
	}
	id, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = id
	return goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error) {
	return s.goalRepo.GetByUserID(ctx, userID)
}

func (s *goalService) GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) UpdateGoalStatus(ctx context.Context, userID, goalID primitive.ObjectID, status domain.GoalStatus) error {
	switch status {
	case domain.GoalActive, domain.GoalCompleted, domain.GoalCancelled:
	default:
		return ErrInvalidGoalStatus
	}
	if _, err := s.GetGoal(ctx, userID, goalID); err != nil {
		return err
	}
	return s.goalRepo.UpdateStatus(ctx, goalID, status)
}

func (s *goalService) ListSports(ctx context.Context) ([]domain.Sport, error) {
	return s.sportRepo.List(ctx)
}

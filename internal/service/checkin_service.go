package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidRating = errors.New("rating must be too_easy, on_track, or too_hard")

const (
	recoveryTargetScore = 40
	boostedWeekCount    = 3
	boostPoints         = 15

	recoveryNote = "Auto-adjusted to recovery week based on your check-in."
	boostNote    = "Intensity boosted based on your check-in."
)

// CheckInResult reports whether a check-in changed the plan.
type CheckInResult struct {
	Adapted bool   `json:"adapted"`
	Message string `json:"message"`
}

// CheckInService records weekly check-ins and adapts future weeks.
type CheckInService interface {
	SubmitCheckIn(ctx context.Context, userID, weekID primitive.ObjectID, rating domain.CheckInRating, comment string) (*CheckInResult, error)
	GetCheckIn(ctx context.Context, userID, weekID primitive.ObjectID) (*domain.WeeklyCheckIn, error)
}

type checkInService struct {
	checkInRepo repository.CheckInRepository
	weekRepo    repository.TrainingWeekRepository
	planRepo    repository.TrainingPlanRepository

	// Adaptation reads future weeks and rewrites them; serialise per
	// plan so two concurrent check-ins cannot interleave.
	mu        sync.Mutex
	planLocks map[primitive.ObjectID]*sync.Mutex
}

// NewCheckInService creates a new instance of checkInService.
func NewCheckInService(checkInRepo repository.CheckInRepository, weekRepo repository.TrainingWeekRepository, planRepo repository.TrainingPlanRepository) CheckInService {
	return &checkInService{
		checkInRepo: checkInRepo,
		weekRepo:    weekRepo,
		planRepo:    planRepo,
		planLocks:   make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (s *checkInService) lockPlan(planID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.planLocks[planID]
	if !ok {
		l = &sync.Mutex{}
		s.planLocks[planID] = l
	}
	return l
}

// SubmitCheckIn upserts the week's check-in and, for too_hard or
// too_easy, rewrites upcoming weeks. Resubmitting replaces the stored
// rating but the adaptation runs again on the already-adapted plan; it
// is not undone.
func (s *checkInService) SubmitCheckIn(ctx context.Context, userID, weekID primitive.ObjectID, rating domain.CheckInRating, comment string) (*CheckInResult, error) {
	if !rating.Valid() {
		return nil, ErrInvalidRating
	}

	week, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, week.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrWeekNotFound
	}

	l := s.lockPlan(plan.ID)
	l.Lock()
	defer l.Unlock()

	checkIn := &domain.WeeklyCheckIn{
		WeekID: weekID,
		UserID: userID,
		Rating: rating,
		Notes:  comment,
	}
	if _, err := s.checkInRepo.Upsert(ctx, checkIn); err != nil {
		return nil, err
	}

	if rating == domain.RatingOnTrack {
		return &CheckInResult{Adapted: false, Message: "Check-in saved. Keep it up!"}, nil
	}

	// Candidate weeks start strictly after the checked-in week.
	// Recovery weeks are never adapted.
	future, err := s.weekRepo.GetFutureNonRecovery(ctx, plan.ID, week.StartDate)
	if err != nil {
		return nil, err
	}
	if len(future) == 0 {
		return &CheckInResult{Adapted: false, Message: "Check-in saved. No future weeks to adapt."}, nil
	}

	switch rating {
	case domain.RatingTooHard:
		return s.adaptTooHard(ctx, future[0])
	default:
		return s.adaptTooEasy(ctx, future)
	}
}

// adaptTooHard converts the nearest future week into a recovery week.
func (s *checkInService) adaptTooHard(ctx context.Context, week domain.TrainingWeek) (*CheckInResult, error) {
	err := s.weekRepo.UpdateTargets(ctx, week.ID, periodization.PhaseRecovery, recoveryTargetScore, recoveryTargetScore, recoveryNote)
	if err != nil {
		return nil, err
	}
	return &CheckInResult{
		Adapted: true,
		Message: fmt.Sprintf("Week %d converted to a recovery week to help you bounce back.", week.WeekNumber),
	}, nil
}

// adaptTooEasy raises volume and intensity on up to the next three
// weeks, capped at the top of the score scale.
func (s *checkInService) adaptTooEasy(ctx context.Context, future []domain.TrainingWeek) (*CheckInResult, error) {
	n := len(future)
	if n > boostedWeekCount {
		n = boostedWeekCount
	}
	for _, week := range future[:n] {
		notes := week.Notes
		if notes == "" {
			notes = boostNote
		} else {
			notes = notes + " | " + boostNote
		}
		err := s.weekRepo.UpdateTargets(ctx, week.ID, week.Phase,
			domain.ClampScore(week.VolumeScore+boostPoints),
			domain.ClampScore(week.IntensityScore+boostPoints),
			notes)
		if err != nil {
			return nil, err
		}
	}
	return &CheckInResult{
		Adapted: true,
		Message: fmt.Sprintf("Next %d week(s) boosted in volume and intensity.", n),
	}, nil
}

// GetCheckIn returns the stored check-in for a week, if any.
func (s *checkInService) GetCheckIn(ctx context.Context, userID, weekID primitive.ObjectID) (*domain.WeeklyCheckIn, error) {
	week, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, week.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrWeekNotFound
	}
	checkIn, err := s.checkInRepo.GetByWeekAndUser(ctx, weekID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return checkIn, nil
}

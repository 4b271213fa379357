package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrPlanNotFound    = errors.New("training plan not found")
	ErrWeekNotFound    = errors.New("training week not found")
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSportNotFound   = errors.New("sport not found")
	ErrDayOccupied     = errors.New("another workout is already scheduled on that day")
)

// PrescribedExercise pairs a prescription row with its library entry.
type PrescribedExercise struct {
	Prescription domain.WorkoutExercise `json:"prescription"`
	Exercise     domain.Exercise        `json:"exercise"`
}

// WorkoutDetail is a workout with its ordered prescriptions.
type WorkoutDetail struct {
	Workout   domain.Workout       `json:"workout"`
	Exercises []PrescribedExercise `json:"exercises"`
}

// WeekDetail is a training week with its workouts.
type WeekDetail struct {
	Week     domain.TrainingWeek `json:"week"`
	Workouts []WorkoutDetail     `json:"workouts"`
}

// PlanDetail is the active plan with its goal, sport, and weeks.
type PlanDetail struct {
	Plan  domain.TrainingPlan  `json:"plan"`
	Goal  domain.Goal          `json:"goal"`
	Sport domain.Sport         `json:"sport"`
	Weeks []domain.TrainingWeek `json:"weeks"`
}

// PlanService generates periodized training plans and serves reads over
// them.
type PlanService interface {
	// GeneratePlan builds a full plan for the goal, replacing any
	// existing active plan. Destructive and unconditional.
	GeneratePlan(ctx context.Context, userID, goalID primitive.ObjectID) (primitive.ObjectID, error)
	GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*PlanDetail, error)
	GetWeek(ctx context.Context, userID, weekID primitive.ObjectID) (*WeekDetail, error)
	// GetTodayWorkout returns nil (no error) on rest days.
	GetTodayWorkout(ctx context.Context, userID primitive.ObjectID) (*WorkoutDetail, error)
	// MoveWorkout reschedules a workout within its week. Fails with
	// ErrDayOccupied if another non-skipped workout already sits on the
	// target day.
	MoveWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, dayOfWeek int) error
	SkipWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

// planService implements the PlanService interface.
type planService struct {
	goalRepo     repository.GoalRepository
	sportRepo    repository.SportRepository
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	planRepo     repository.TrainingPlanRepository
	weekRepo     repository.TrainingWeekRepository
	workoutRepo  repository.WorkoutRepository
	txManager    repository.TransactionManager

	now func() time.Time // injectable for tests
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	goalRepo repository.GoalRepository,
	sportRepo repository.SportRepository,
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	planRepo repository.TrainingPlanRepository,
	weekRepo repository.TrainingWeekRepository,
	workoutRepo repository.WorkoutRepository,
	txManager repository.TransactionManager,
) PlanService {
	return &planService{
		goalRepo:     goalRepo,
		sportRepo:    sportRepo,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		planRepo:     planRepo,
		weekRepo:     weekRepo,
		workoutRepo:  workoutRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

// today returns the current calendar date in YYYY-MM-DD.
func (s *planService) today() string {
	return s.now().UTC().Format(periodization.DateLayout)
}

// GeneratePlan builds the full periodized plan for a goal.
func (s *planService) GeneratePlan(ctx context.Context, userID, goalID primitive.ObjectID) (primitive.ObjectID, error) {
	// 1. Load goal and verify ownership
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrGoalNotFound
		}
		return primitive.NilObjectID, err
	}
	if goal.UserID != userID {
		// Not owned by the caller reads the same as not existing.
		return primitive.NilObjectID, ErrGoalNotFound
	}

	sport, err := s.sportRepo.GetByID(ctx, goal.SportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrSportNotFound
		}
		return primitive.NilObjectID, err
	}

	// Profile personalises the weekly workout count.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	// 2. Periodize from this week's Monday to the goal date
	startDate, err := periodization.MondayOf(s.today())
	if err != nil {
		return primitive.NilObjectID, err
	}
	weekSpecs, err := periodization.BuildWeekSpecs(startDate, goal.TargetDate)
	if err != nil {
		return primitive.NilObjectID, err
	}

	// 3. Replace any existing active plan inside one unit of work so a
	// failing generation never leaves a half-built plan visible.
	var planID primitive.ObjectID
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.planRepo.GetActiveByGoalID(ctx, goalID)
		if err == nil {
			if err := s.planRepo.DeleteCascade(ctx, existing.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		plan := &domain.TrainingPlan{
			UserID:     userID,
			GoalID:     goalID,
			Name:       goal.Name,
			StartDate:  startDate,
			EndDate:    goal.TargetDate,
			TotalWeeks: len(weekSpecs),
			Status:     domain.PlanActive,
		}
		planID, err = s.planRepo.Create(ctx, plan)
		if err != nil {
			return err
		}

		for _, spec := range weekSpecs {
			if err := s.createWeek(ctx, planID, sport, user, spec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return planID, nil
}

// createWeek inserts one week with its workouts and prescriptions.
func (s *planService) createWeek(ctx context.Context, planID primitive.ObjectID, sport *domain.Sport, user *domain.User, spec periodization.WeekSpec) error {
	week := &domain.TrainingWeek{
		PlanID:          planID,
		WeekNumber:      spec.WeekNumber,
		Phase:           spec.Phase,
		StartDate:       spec.StartDate,
		VolumeScore:     domain.ClampScore(spec.VolumeScore * domain.ScoreScale),
		IntensityScore:  domain.ClampScore(spec.IntensityScore * domain.ScoreScale),
		WorkoutsPerWeek: spec.WorkoutsPerWeek,
		Notes:           spec.Notes,
	}
	weekID, err := s.weekRepo.Create(ctx, week)
	if err != nil {
		return err
	}

	// The nominal weekly count, capped by the user's preference or
	// fitness-level default.
	effective := spec.WorkoutsPerWeek
	if cap := user.TrainingDayCap(); cap > 0 && cap < effective {
		effective = cap
	}

	slots := periodization.SlotsFor(sport.Slug, effective)
	dayCounts := make(map[int]int)
	for _, slot := range slots {
		dayCounts[slot.DayOfWeek]++
		workout := &domain.Workout{
			WeekID:           weekID,
			Name:             slot.Name,
			Focus:            slot.Focus,
			DayOfWeek:        slot.DayOfWeek,
			OrderInDay:       dayCounts[slot.DayOfWeek],
			EstimatedMinutes: slot.EstimatedMinutes,
			Status:           domain.WorkoutScheduled,
		}
		workoutID, err := s.workoutRepo.Create(ctx, workout)
		if err != nil {
			return err
		}

		selected, err := s.selectExercises(ctx, sport.Slug, slot.PrimaryMuscles, slot.ExerciseCount, slot.PreferType)
		if err != nil {
			return err
		}
		// A slot with no candidates still gets its workout row, just
		// without prescriptions.
		if len(selected) == 0 {
			continue
		}

		rows := make([]domain.WorkoutExercise, len(selected))
		for i, ex := range selected {
			pr := periodization.GetPrescription(spec.Phase, string(ex.Type))
			rows[i] = domain.WorkoutExercise{
				WorkoutID:      workoutID,
				ExerciseID:     ex.ID,
				OrderInWorkout: i + 1,
				Sets:           pr.Sets,
				Reps:           pr.Reps,
				RestSeconds:    pr.RestSeconds,
			}
		}
		if err := s.workoutRepo.InsertExercises(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

// selectExercises fills a workout slot: candidates are exercises with a
// primary role on one of the slot's muscles, ranked by sport relevance.
// A preferred-type filter applies only while it can still fill the slot;
// otherwise the unfiltered ranked set is used. Greedy top-k, ties broken
// by the candidates' stable insertion order.
func (s *planService) selectExercises(ctx context.Context, sportSlug string, primaryMuscles []string, count int, preferType string) ([]domain.Exercise, error) {
	candidates, err := s.exerciseRepo.FindByPrimaryMuscles(ctx, primaryMuscles)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RelevanceFor(sportSlug) > candidates[j].RelevanceFor(sportSlug)
	})

	pool := candidates
	if preferType != "" && preferType != "any" {
		filtered := make([]domain.Exercise, 0, len(candidates))
		for _, c := range candidates {
			if string(c.Type) == preferType {
				filtered = append(filtered, c)
			}
		}
		// Never short the slot when a laxer match exists.
		if len(filtered) >= count {
			pool = filtered
		}
	}

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool, nil
}

// GetCurrentPlan returns the caller's active plan with goal, sport, and
// weeks, or ErrPlanNotFound.
func (s *planService) GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*PlanDetail, error) {
	plan, err := s.planRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	goal, err := s.goalRepo.GetByID(ctx, plan.GoalID)
	if err != nil {
		return nil, err
	}
	sport, err := s.sportRepo.GetByID(ctx, goal.SportID)
	if err != nil {
		return nil, err
	}
	weeks, err := s.weekRepo.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	return &PlanDetail{Plan: *plan, Goal: *goal, Sport: *sport, Weeks: weeks}, nil
}

// GetWeek returns one week with its workouts and prescriptions.
func (s *planService) GetWeek(ctx context.Context, userID, weekID primitive.ObjectID) (*WeekDetail, error) {
	week, err := s.ownedWeek(ctx, userID, weekID)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.GetByWeekID(ctx, week.ID)
	if err != nil {
		return nil, err
	}

	detail := &WeekDetail{Week: *week, Workouts: make([]WorkoutDetail, 0, len(workouts))}
	for _, w := range workouts {
		wd, err := s.workoutDetail(ctx, w)
		if err != nil {
			return nil, err
		}
		detail.Workouts = append(detail.Workouts, *wd)
	}
	return detail, nil
}

// GetTodayWorkout finds the active plan's current week and returns the
// workout scheduled for today, or nil on a rest day.
func (s *planService) GetTodayWorkout(ctx context.Context, userID primitive.ObjectID) (*WorkoutDetail, error) {
	plan, err := s.planRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	today := s.today()
	week, err := s.weekRepo.GetCurrent(ctx, plan.ID, today)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil // plan hasn't started yet
		}
		return nil, err
	}

	// Go weekdays start on Sunday; the schedule's start on Monday.
	day := (int(s.now().UTC().Weekday()) + 6) % 7
	workouts, err := s.workoutRepo.GetByWeekAndDay(ctx, week.ID, day)
	if err != nil {
		return nil, err
	}
	for _, w := range workouts {
		if w.Status != domain.WorkoutSkipped {
			return s.workoutDetail(ctx, w)
		}
	}
	return nil, nil // rest day or everything skipped
}

// MoveWorkout reschedules a workout onto another day of its week.
func (s *planService) MoveWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, dayOfWeek int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return errors.New("dayOfWeek must be in 0..6")
	}

	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	if workout.DayOfWeek == dayOfWeek {
		return nil
	}

	occupants, err := s.workoutRepo.GetByWeekAndDay(ctx, workout.WeekID, dayOfWeek)
	if err != nil {
		return err
	}
	for _, o := range occupants {
		if o.Status != domain.WorkoutSkipped {
			return ErrDayOccupied
		}
	}
	return s.workoutRepo.UpdateDay(ctx, workoutID, dayOfWeek)
}

// SkipWorkout marks a workout as skipped.
func (s *planService) SkipWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return err
	}
	return s.workoutRepo.UpdateStatus(ctx, workoutID, domain.WorkoutSkipped)
}

// --- ownership helpers ---

// ownedWeek loads a week and verifies it belongs to the caller via its
// plan. Ownership failures read as not-found.
func (s *planService) ownedWeek(ctx context.Context, userID, weekID primitive.ObjectID) (*domain.TrainingWeek, error) {
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
	return week, nil
}

// ownedWorkout loads a workout and verifies ownership through the
// week -> plan chain.
func (s *planService) ownedWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if _, err := s.ownedWeek(ctx, userID, workout.WeekID); err != nil {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// workoutDetail resolves a workout's prescriptions against the library.
func (s *planService) workoutDetail(ctx context.Context, workout domain.Workout) (*WorkoutDetail, error) {
	rows, err := s.workoutRepo.GetExercisesByWorkoutID(ctx, workout.ID)
	if err != nil {
		return nil, err
	}
	detail := &WorkoutDetail{Workout: workout, Exercises: make([]PrescribedExercise, 0, len(rows))}
	for _, row := range rows {
		ex, err := s.exerciseRepo.GetByID(ctx, row.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue // library entry removed; keep the rest
			}
			return nil, err
		}
		detail.Exercises = append(detail.Exercises, PrescribedExercise{Prescription: row, Exercise: *ex})
	}
	return detail, nil
}

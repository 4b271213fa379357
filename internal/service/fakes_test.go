package service

import (
	"context"
	"sort"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Slices keep insertion order so reads are
// as deterministic as the Mongo implementations they stand in for.

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGoalRepo struct {
	goals []domain.Goal
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	goal.ID = primitive.NewObjectID()
	r.goals = append(r.goals, *goal)
	return goal.ID, nil
}

func (r *fakeGoalRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	for i := range r.goals {
		if r.goals[i].ID == id {
			g := r.goals[i]
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGoalRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error) {
	for i := range r.goals {
		if r.goals[i].UserID == userID && r.goals[i].Status == domain.GoalActive {
			g := r.goals[i]
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGoalRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.GoalStatus) error {
	for i := range r.goals {
		if r.goals[i].ID == id {
			r.goals[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSportRepo struct {
	sports []domain.Sport
}

func (r *fakeSportRepo) Create(ctx context.Context, sport *domain.Sport) (primitive.ObjectID, error) {
	sport.ID = primitive.NewObjectID()
	r.sports = append(r.sports, *sport)
	return sport.ID, nil
}

func (r *fakeSportRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Sport, error) {
	for i := range r.sports {
		if r.sports[i].ID == id {
			s := r.sports[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSportRepo) GetBySlug(ctx context.Context, slug string) (*domain.Sport, error) {
	for i := range r.sports {
		if r.sports[i].Slug == slug {
			s := r.sports[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSportRepo) List(ctx context.Context) ([]domain.Sport, error) {
	return append([]domain.Sport(nil), r.sports...), nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, level domain.FitnessLevel, trainingDays *int) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].FitnessLevel = level
			r.users[i].TrainingDaysPerWeek = trainingDays
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			e := r.exercises[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	return append([]domain.Exercise(nil), r.exercises...), nil
}

func (r *fakeExerciseRepo) FindByPrimaryMuscles(ctx context.Context, muscleGroups []string) ([]domain.Exercise, error) {
	wanted := make(map[string]bool, len(muscleGroups))
	for _, g := range muscleGroups {
		wanted[g] = true
	}
	var out []domain.Exercise
	for _, e := range r.exercises {
		for _, m := range e.Muscles {
			if m.Role == domain.RolePrimary && wanted[m.Group] {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) SetVideoObjectKey(ctx context.Context, id primitive.ObjectID, objectKey string) error {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			r.exercises[i].VideoObjectKey = objectKey
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeExerciseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.exercises)), nil
}

type fakePlanRepo struct {
	plans []domain.TrainingPlan

	cascadeTargets []primitive.ObjectID
	weekRepo       *fakeWeekRepo
	workoutRepo    *fakeWorkoutRepo
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	r.plans = append(r.plans, *plan)
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	for i := range r.plans {
		if r.plans[i].ID == id {
			p := r.plans[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) GetActiveByGoalID(ctx context.Context, goalID primitive.ObjectID) (*domain.TrainingPlan, error) {
	for i := range r.plans {
		if r.plans[i].GoalID == goalID && r.plans[i].Status == domain.PlanActive {
			p := r.plans[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingPlan, error) {
	for i := range r.plans {
		if r.plans[i].UserID == userID && r.plans[i].Status == domain.PlanActive {
			p := r.plans[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) DeleteCascade(ctx context.Context, planID primitive.ObjectID) error {
	r.cascadeTargets = append(r.cascadeTargets, planID)
	kept := r.plans[:0]
	for _, p := range r.plans {
		if p.ID != planID {
			kept = append(kept, p)
		}
	}
	r.plans = kept
	if r.weekRepo != nil {
		var weekIDs []primitive.ObjectID
		keptWeeks := r.weekRepo.weeks[:0]
		for _, w := range r.weekRepo.weeks {
			if w.PlanID == planID {
				weekIDs = append(weekIDs, w.ID)
			} else {
				keptWeeks = append(keptWeeks, w)
			}
		}
		r.weekRepo.weeks = keptWeeks
		if r.workoutRepo != nil {
			r.workoutRepo.deleteByWeekIDs(weekIDs)
		}
	}
	return nil
}

type fakeWeekRepo struct {
	weeks []domain.TrainingWeek
}

func (r *fakeWeekRepo) Create(ctx context.Context, week *domain.TrainingWeek) (primitive.ObjectID, error) {
	week.ID = primitive.NewObjectID()
	r.weeks = append(r.weeks, *week)
	return week.ID, nil
}

func (r *fakeWeekRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingWeek, error) {
	for i := range r.weeks {
		if r.weeks[i].ID == id {
			w := r.weeks[i]
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWeekRepo) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingWeek, error) {
	var out []domain.TrainingWeek
	for _, w := range r.weeks {
		if w.PlanID == planID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekNumber < out[j].WeekNumber })
	return out, nil
}

func (r *fakeWeekRepo) GetCurrent(ctx context.Context, planID primitive.ObjectID, date string) (*domain.TrainingWeek, error) {
	var best *domain.TrainingWeek
	for i := range r.weeks {
		w := r.weeks[i]
		if w.PlanID != planID || w.StartDate > date {
			continue
		}
		if best == nil || w.StartDate > best.StartDate {
			best = &w
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	out := *best
	return &out, nil
}

func (r *fakeWeekRepo) GetFutureNonRecovery(ctx context.Context, planID primitive.ObjectID, afterDate string) ([]domain.TrainingWeek, error) {
	var out []domain.TrainingWeek
	for _, w := range r.weeks {
		if w.PlanID == planID && w.StartDate > afterDate && w.Phase != periodization.PhaseRecovery {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (r *fakeWeekRepo) UpdateTargets(ctx context.Context, id primitive.ObjectID, phase periodization.Phase, volumeScore, intensityScore int, notes string) error {
	for i := range r.weeks {
		if r.weeks[i].ID == id {
			r.weeks[i].Phase = phase
			r.weeks[i].VolumeScore = volumeScore
			r.weeks[i].IntensityScore = intensityScore
			r.weeks[i].Notes = notes
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeWorkoutRepo struct {
	workouts []domain.Workout
	rows     []domain.WorkoutExercise
}

func (r *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	r.workouts = append(r.workouts, *workout)
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	for i := range r.workouts {
		if r.workouts[i].ID == id {
			w := r.workouts[i]
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) GetByWeekID(ctx context.Context, weekID primitive.ObjectID) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.WeekID == weekID {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].OrderInDay < out[j].OrderInDay
	})
	return out, nil
}

func (r *fakeWorkoutRepo) GetByWeekAndDay(ctx context.Context, weekID primitive.ObjectID, dayOfWeek int) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.WeekID == weekID && w.DayOfWeek == dayOfWeek {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) UpdateDay(ctx context.Context, id primitive.ObjectID, dayOfWeek int) error {
	for i := range r.workouts {
		if r.workouts[i].ID == id {
			r.workouts[i].DayOfWeek = dayOfWeek
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeWorkoutRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.WorkoutStatus) error {
	for i := range r.workouts {
		if r.workouts[i].ID == id {
			r.workouts[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeWorkoutRepo) InsertExercises(ctx context.Context, exercises []domain.WorkoutExercise) error {
	for i := range exercises {
		exercises[i].ID = primitive.NewObjectID()
	}
	r.rows = append(r.rows, exercises...)
	return nil
}

func (r *fakeWorkoutRepo) GetExercisesByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	var out []domain.WorkoutExercise
	for _, row := range r.rows {
		if row.WorkoutID == workoutID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderInWorkout < out[j].OrderInWorkout })
	return out, nil
}

func (r *fakeWorkoutRepo) deleteByWeekIDs(weekIDs []primitive.ObjectID) {
	ids := make(map[primitive.ObjectID]bool, len(weekIDs))
	for _, id := range weekIDs {
		ids[id] = true
	}
	workoutIDs := make(map[primitive.ObjectID]bool)
	kept := r.workouts[:0]
	for _, w := range r.workouts {
		if ids[w.WeekID] {
			workoutIDs[w.ID] = true
		} else {
			kept = append(kept, w)
		}
	}
	r.workouts = kept
	keptRows := r.rows[:0]
	for _, row := range r.rows {
		if !workoutIDs[row.WorkoutID] {
			keptRows = append(keptRows, row)
		}
	}
	r.rows = keptRows
}

type fakeCheckInRepo struct {
	checkIns []domain.WeeklyCheckIn
}

func (r *fakeCheckInRepo) Upsert(ctx context.Context, checkIn *domain.WeeklyCheckIn) (primitive.ObjectID, error) {
	for i := range r.checkIns {
		if r.checkIns[i].WeekID == checkIn.WeekID && r.checkIns[i].UserID == checkIn.UserID {
			checkIn.ID = r.checkIns[i].ID
			r.checkIns[i] = *checkIn
			return checkIn.ID, nil
		}
	}
	checkIn.ID = primitive.NewObjectID()
	r.checkIns = append(r.checkIns, *checkIn)
	return checkIn.ID, nil
}

func (r *fakeCheckInRepo) GetByWeekAndUser(ctx context.Context, weekID, userID primitive.ObjectID) (*domain.WeeklyCheckIn, error) {
	for i := range r.checkIns {
		if r.checkIns[i].WeekID == weekID && r.checkIns[i].UserID == userID {
			c := r.checkIns[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeWorkoutLogRepo struct {
	logs []domain.WorkoutLog
	sets []domain.ExerciseSetLog
}

func (r *fakeWorkoutLogRepo) UpsertLog(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	for i := range r.logs {
		if r.logs[i].WorkoutID == log.WorkoutID && r.logs[i].UserID == log.UserID {
			log.ID = r.logs[i].ID
			r.logs[i] = *log
			return log.ID, nil
		}
	}
	log.ID = primitive.NewObjectID()
	r.logs = append(r.logs, *log)
	return log.ID, nil
}

func (r *fakeWorkoutLogRepo) GetLogByWorkoutAndUser(ctx context.Context, workoutID, userID primitive.ObjectID) (*domain.WorkoutLog, error) {
	for i := range r.logs {
		if r.logs[i].WorkoutID == workoutID && r.logs[i].UserID == userID {
			l := r.logs[i]
			return &l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutLogRepo) UpsertSetLog(ctx context.Context, setLog *domain.ExerciseSetLog) (primitive.ObjectID, error) {
	for i := range r.sets {
		if r.sets[i].WorkoutLogID == setLog.WorkoutLogID &&
			r.sets[i].ExerciseID == setLog.ExerciseID &&
			r.sets[i].SetNumber == setLog.SetNumber {
			setLog.ID = r.sets[i].ID
			r.sets[i] = *setLog
			return setLog.ID, nil
		}
	}
	setLog.ID = primitive.NewObjectID()
	r.sets = append(r.sets, *setLog)
	return setLog.ID, nil
}

func (r *fakeWorkoutLogRepo) GetSetLogs(ctx context.Context, workoutLogID primitive.ObjectID) ([]domain.ExerciseSetLog, error) {
	var out []domain.ExerciseSetLog
	for _, s := range r.sets {
		if s.WorkoutLogID == workoutLogID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeWorkoutLogRepo) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error) {
	var out []domain.WorkoutLog
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.logs[i].UserID == userID {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}

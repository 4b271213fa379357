package service

import (
	"context"
	"sync"
	"testing"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/periodization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// checkInFixture seeds a plan with a typical ten-week phase layout and
// returns the service plus the stored weeks in order.
type checkInFixture struct {
	svc    *checkInService
	userID primitive.ObjectID
	planID primitive.ObjectID
	weeks  *fakeWeekRepo
	plans  *fakePlanRepo
	stored []domain.TrainingWeek
}

func newCheckInFixture(t *testing.T) *checkInFixture {
	t.Helper()

	weeks := &fakeWeekRepo{}
	plans := &fakePlanRepo{}
	checkIns := &fakeCheckInRepo{}

	userID := primitive.NewObjectID()
	planID, err := plans.Create(context.Background(), &domain.TrainingPlan{
		UserID: userID,
		GoalID: primitive.NewObjectID(),
		Status: domain.PlanActive,
	})
	require.NoError(t, err)

	layout := []struct {
		phase  periodization.Phase
		volume int
	}{
		{periodization.PhaseBase, 50},
		{periodization.PhaseBase, 60},
		{periodization.PhaseBase, 60},
		{periodization.PhaseRecovery, 40},
		{periodization.PhaseBuild, 70},
		{periodization.PhaseBuild, 80},
		{periodization.PhaseBuild, 90},
		{periodization.PhasePeak, 40},
		{periodization.PhasePeak, 50},
		{periodization.PhasePeak, 50},
	}
	monday := "2026-01-05"
	var stored []domain.TrainingWeek
	for i, row := range layout {
		week := &domain.TrainingWeek{
			PlanID:          planID,
			WeekNumber:      i + 1,
			Phase:           row.phase,
			StartDate:       monday,
			VolumeScore:     row.volume,
			IntensityScore:  row.volume,
			WorkoutsPerWeek: 3,
		}
		_, err := weeks.Create(context.Background(), week)
		require.NoError(t, err)
		stored = append(stored, *week)
		monday, err = periodization.AddWeeks(monday, 1)
		require.NoError(t, err)
	}

	svc := NewCheckInService(checkIns, weeks, plans).(*checkInService)
	return &checkInFixture{svc: svc, userID: userID, planID: planID, weeks: weeks, plans: plans, stored: stored}
}

func TestSubmitCheckInOnTrack(t *testing.T) {
	f := newCheckInFixture(t)

	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingOnTrack, "felt good")
	require.NoError(t, err)
	assert.False(t, result.Adapted)
	assert.Equal(t, "Check-in saved. Keep it up!", result.Message)

	// Stored and retrievable.
	got, err := f.svc.GetCheckIn(context.Background(), f.userID, f.stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingOnTrack, got.Rating)
	assert.Equal(t, "felt good", got.Notes)

	// No week was touched.
	for i, w := range f.stored {
		current, err := f.weeks.GetByID(context.Background(), w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.VolumeScore, current.VolumeScore, "week %d", i+1)
		assert.Equal(t, w.Phase, current.Phase, "week %d", i+1)
	}
}

func TestSubmitCheckInTooHardConvertsNearestWeek(t *testing.T) {
	f := newCheckInFixture(t)

	// Checking in on week 3: week 4 is already recovery, so week 5 is
	// the nearest adaptable week.
	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[2].ID, domain.RatingTooHard, "")
	require.NoError(t, err)
	assert.True(t, result.Adapted)
	assert.Equal(t, "Week 5 converted to a recovery week to help you bounce back.", result.Message)

	adapted, err := f.weeks.GetByID(context.Background(), f.stored[4].ID)
	require.NoError(t, err)
	assert.Equal(t, periodization.PhaseRecovery, adapted.Phase)
	assert.Equal(t, 40, adapted.VolumeScore)
	assert.Equal(t, 40, adapted.IntensityScore)
	assert.Equal(t, "Auto-adjusted to recovery week based on your check-in.", adapted.Notes)

	// The scheduled deload in week 4 was left alone.
	untouched, err := f.weeks.GetByID(context.Background(), f.stored[3].ID)
	require.NoError(t, err)
	assert.Equal(t, periodization.PhaseRecovery, untouched.Phase)
	assert.Equal(t, 40, untouched.VolumeScore)
	assert.Empty(t, untouched.Notes)
}

func TestSubmitCheckInTooEasyBoostsNextThree(t *testing.T) {
	f := newCheckInFixture(t)

	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingTooEasy, "")
	require.NoError(t, err)
	assert.True(t, result.Adapted)
	assert.Equal(t, "Next 3 week(s) boosted in volume and intensity.", result.Message)

	// Weeks 2 and 3 boost; week 4 (recovery) is skipped; week 5 takes
	// the third boost.
	boosted := []struct {
		idx  int
		want int
	}{{1, 75}, {2, 75}, {4, 85}}
	for _, b := range boosted {
		w, err := f.weeks.GetByID(context.Background(), f.stored[b.idx].ID)
		require.NoError(t, err)
		assert.Equal(t, b.want, w.VolumeScore, "week %d", b.idx+1)
		assert.Equal(t, b.want, w.IntensityScore, "week %d", b.idx+1)
		assert.Equal(t, "Intensity boosted based on your check-in.", w.Notes)
	}

	recovery, err := f.weeks.GetByID(context.Background(), f.stored[3].ID)
	require.NoError(t, err)
	assert.Equal(t, 40, recovery.VolumeScore)
	assert.Equal(t, periodization.PhaseRecovery, recovery.Phase)

	week6, err := f.weeks.GetByID(context.Background(), f.stored[5].ID)
	require.NoError(t, err)
	assert.Equal(t, 80, week6.VolumeScore)
}

func TestSubmitCheckInTooEasyCapsAtHundred(t *testing.T) {
	f := newCheckInFixture(t)

	// Week 7 already sits at 90; the boost caps at the scale top.
	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[5].ID, domain.RatingTooEasy, "")
	require.NoError(t, err)
	assert.True(t, result.Adapted)

	w, err := f.weeks.GetByID(context.Background(), f.stored[6].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, w.VolumeScore)
}

func TestSubmitCheckInTooEasyAppendsToExistingNotes(t *testing.T) {
	f := newCheckInFixture(t)

	require.NoError(t, f.weeks.UpdateTargets(context.Background(), f.stored[1].ID,
		periodization.PhaseBase, 60, 60, "Focus on form this week."))

	_, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingTooEasy, "")
	require.NoError(t, err)

	w, err := f.weeks.GetByID(context.Background(), f.stored[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Focus on form this week. | Intensity boosted based on your check-in.", w.Notes)
}

func TestSubmitCheckInLastWeekHasNothingToAdapt(t *testing.T) {
	f := newCheckInFixture(t)

	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[9].ID, domain.RatingTooHard, "")
	require.NoError(t, err)
	assert.False(t, result.Adapted)
	assert.Equal(t, "Check-in saved. No future weeks to adapt.", result.Message)
}

func TestSubmitCheckInNearEndBoostsFewerWeeks(t *testing.T) {
	f := newCheckInFixture(t)

	result, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[8].ID, domain.RatingTooEasy, "")
	require.NoError(t, err)
	assert.True(t, result.Adapted)
	assert.Equal(t, "Next 1 week(s) boosted in volume and intensity.", result.Message)
}

func TestSubmitCheckInValidation(t *testing.T) {
	f := newCheckInFixture(t)

	_, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.CheckInRating("amazing"), "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = f.svc.SubmitCheckIn(context.Background(), primitive.NewObjectID(), f.stored[0].ID, domain.RatingOnTrack, "")
	assert.ErrorIs(t, err, ErrWeekNotFound)

	_, err = f.svc.SubmitCheckIn(context.Background(), f.userID, primitive.NewObjectID(), domain.RatingOnTrack, "")
	assert.ErrorIs(t, err, ErrWeekNotFound)
}

func TestSubmitCheckInResubmissionReplaces(t *testing.T) {
	f := newCheckInFixture(t)

	_, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingOnTrack, "fine")
	require.NoError(t, err)
	_, err = f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingTooEasy, "actually easy")
	require.NoError(t, err)

	got, err := f.svc.GetCheckIn(context.Background(), f.userID, f.stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingTooEasy, got.Rating)
	assert.Equal(t, "actually easy", got.Notes)
}

func TestSubmitCheckInConcurrentSameWeek(t *testing.T) {
	f := newCheckInFixture(t)

	// The per-plan lock serialises adaptation; this mostly guards
	// against races under -race.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SubmitCheckIn(context.Background(), f.userID, f.stored[0].ID, domain.RatingOnTrack, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

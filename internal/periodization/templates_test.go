package periodization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsForKnownSport(t *testing.T) {
	slots := SlotsFor("skiing", 3)
	require.Len(t, slots, 3)
	assert.Equal(t, "Lower Body Power", slots[0].Name)
	assert.Equal(t, "Hip & Posterior Chain", slots[1].Name)
	assert.Equal(t, "Core & Stability", slots[2].Name)

	// Days spread across the week, strictly increasing.
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].DayOfWeek, slots[i-1].DayOfWeek)
	}
}

func TestSlotsForUnknownSportFallsBack(t *testing.T) {
	got := SlotsFor("underwater-hockey", 3)
	want := SlotsFor(GeneralFitnessSlug, 3)
	assert.Equal(t, want, got)
}

func TestSlotsForClampsWorkoutCount(t *testing.T) {
	assert.Len(t, SlotsFor("skiing", 0), 2)
	assert.Len(t, SlotsFor("skiing", 1), 2)
	assert.Len(t, SlotsFor("skiing", 4), 4)
	assert.Len(t, SlotsFor("skiing", 9), 4)
}

func TestSlotsForEverySportCoversAllCounts(t *testing.T) {
	for slug := range sportTemplates {
		for count := 2; count <= 4; count++ {
			slots := SlotsFor(slug, count)
			assert.Len(t, slots, count, "%s at %d workouts", slug, count)
			for _, slot := range slots {
				assert.NotEmpty(t, slot.PrimaryMuscles, "%s %q", slug, slot.Name)
				assert.Positive(t, slot.ExerciseCount, "%s %q", slug, slot.Name)
				assert.GreaterOrEqual(t, slot.DayOfWeek, 0)
				assert.LessOrEqual(t, slot.DayOfWeek, 6)
			}
		}
	}
}

func TestSlotsForClimbingIsUpperBiased(t *testing.T) {
	slots := SlotsFor("rock-climbing", 4)
	require.Len(t, slots, 4)
	assert.Equal(t, []string{"upper_back"}, slots[0].PrimaryMuscles)
}

package periodization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrescription(t *testing.T) {
	tests := []struct {
		name         string
		phase        Phase
		exerciseType string
		want         Prescription
	}{
		{"peak strength is heavy and rested", PhasePeak, "strength", Prescription{Sets: 5, Reps: "3-5", RestSeconds: 180}},
		{"base strength is volume work", PhaseBase, "strength", Prescription{Sets: 3, Reps: "12-15", RestSeconds: 90}},
		{"build plyometric", PhaseBuild, "plyometric", Prescription{Sets: 4, Reps: "6", RestSeconds: 120}},
		{"peak cardio intervals shorten rest", PhasePeak, "cardio", Prescription{Sets: 4, Reps: "60s", RestSeconds: 20}},
		{"recovery strength is light", PhaseRecovery, "strength", Prescription{Sets: 2, Reps: "12-15", RestSeconds: 60}},
		{"balance collapses to other", PhaseBase, "balance", Prescription{Sets: 3, Reps: "12", RestSeconds: 60}},
		{"flexibility collapses to other", PhasePeak, "flexibility", Prescription{Sets: 4, Reps: "6", RestSeconds: 120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPrescription(tt.phase, tt.exerciseType))
		})
	}
}

func TestParamsForUnknownPhaseFallsBackToBase(t *testing.T) {
	assert.Equal(t, phaseTable[PhaseBase], paramsFor(Phase("corrupted")))
}

func TestPhaseTableShape(t *testing.T) {
	for phase, params := range phaseTable {
		assert.LessOrEqual(t, params.VolumeLow, params.VolumeHigh, "%s volume range", phase)
		assert.LessOrEqual(t, params.IntensityLow, params.IntensityHigh, "%s intensity range", phase)
		assert.Positive(t, params.WorkoutsPerWeek, "%s workouts", phase)
	}
}

// internal/periodization/phase.go
package periodization

// Phase is a named training stage with characteristic volume and
// intensity ranges.
type Phase string

const (
	PhaseBase       Phase = "base"
	PhaseBuild      Phase = "build"
	PhasePeak       Phase = "peak"
	PhaseRecovery   Phase = "recovery"
	PhaseTransition Phase = "transition"
)

// Prescription is a sets/reps/rest triple for one exercise slot.
// Reps is free-form text: a numeric range ("6-10"), a time ("30s"),
// or "AMRAP".
type Prescription struct {
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

// setsRepsTable holds the per-type prescriptions for one phase.
type setsRepsTable struct {
	Strength   Prescription
	Plyometric Prescription
	Cardio     Prescription
	Other      Prescription
}

// phaseParams is the fixed parameter row for one training phase.
// Volume and intensity are on the 1-10 generation scale.
type phaseParams struct {
	VolumeLow, VolumeHigh       int
	IntensityLow, IntensityHigh int
	WorkoutsPerWeek             int
	SetsReps                    setsRepsTable
}

// phaseTable is authored data. The exact values are a contract with the
// downstream exercise selection and the clients rendering the plan.
var phaseTable = map[Phase]phaseParams{
	PhaseBase: {
		VolumeLow: 5, VolumeHigh: 7,
		IntensityLow: 3, IntensityHigh: 5,
		WorkoutsPerWeek: 3,
		SetsReps: setsRepsTable{
			Strength:   Prescription{Sets: 3, Reps: "12-15", RestSeconds: 90},
			Plyometric: Prescription{Sets: 3, Reps: "8", RestSeconds: 90},
			Cardio:     Prescription{Sets: 3, Reps: "30s", RestSeconds: 45},
			Other:      Prescription{Sets: 3, Reps: "12", RestSeconds: 60},
		},
	},
	PhaseBuild: {
		VolumeLow: 7, VolumeHigh: 9,
		IntensityLow: 6, IntensityHigh: 8,
		WorkoutsPerWeek: 4,
		SetsReps: setsRepsTable{
			Strength:   Prescription{Sets: 4, Reps: "6-10", RestSeconds: 120},
			Plyometric: Prescription{Sets: 4, Reps: "6", RestSeconds: 120},
			Cardio:     Prescription{Sets: 4, Reps: "45s", RestSeconds: 30},
			Other:      Prescription{Sets: 4, Reps: "10", RestSeconds: 90},
		},
	},
	PhasePeak: {
		VolumeLow: 4, VolumeHigh: 5,
		IntensityLow: 8, IntensityHigh: 9,
		WorkoutsPerWeek: 3,
		SetsReps: setsRepsTable{
			Strength:   Prescription{Sets: 5, Reps: "3-5", RestSeconds: 180},
			Plyometric: Prescription{Sets: 4, Reps: "4", RestSeconds: 150},
			Cardio:     Prescription{Sets: 4, Reps: "60s", RestSeconds: 20},
			Other:      Prescription{Sets: 4, Reps: "6", RestSeconds: 120},
		},
	},
	PhaseRecovery: {
		VolumeLow: 3, VolumeHigh: 4,
		IntensityLow: 3, IntensityHigh: 4,
		WorkoutsPerWeek: 2,
		SetsReps: setsRepsTable{
			Strength:   Prescription{Sets: 2, Reps: "12-15", RestSeconds: 60},
			Plyometric: Prescription{Sets: 2, Reps: "6", RestSeconds: 60},
			Cardio:     Prescription{Sets: 2, Reps: "20s", RestSeconds: 60},
			Other:      Prescription{Sets: 2, Reps: "12", RestSeconds: 60},
		},
	},
	PhaseTransition: {
		VolumeLow: 4, VolumeHigh: 5,
		IntensityLow: 4, IntensityHigh: 5,
		WorkoutsPerWeek: 3,
		SetsReps: setsRepsTable{
			Strength:   Prescription{Sets: 3, Reps: "12", RestSeconds: 90},
			Plyometric: Prescription{Sets: 3, Reps: "8", RestSeconds: 90},
			Cardio:     Prescription{Sets: 3, Reps: "30s", RestSeconds: 45},
			Other:      Prescription{Sets: 3, Reps: "12", RestSeconds: 60},
		},
	},
}

// paramsFor returns the parameter row for a phase. Unknown phases fall
// back to base so a corrupt stored value cannot take the engine down.
func paramsFor(phase Phase) phaseParams {
	if p, ok := phaseTable[phase]; ok {
		return p
	}
	return phaseTable[PhaseBase]
}

// GetPrescription maps a (phase, exercise type) pair to its sets/reps/rest
// prescription. Exercise types other than strength/plyometric/cardio
// collapse to the "other" row.
func GetPrescription(phase Phase, exerciseType string) Prescription {
	sr := paramsFor(phase).SetsReps
	switch exerciseType {
	case "strength":
		return sr.Strength
	case "plyometric":
		return sr.Plyometric
	case "cardio":
		return sr.Cardio
	default:
		return sr.Other
	}
}

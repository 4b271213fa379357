// internal/periodization/builder.go
package periodization

import (
	"fmt"
	"math"
)

// DeloadNote is written on every scheduled deload week.
const DeloadNote = "Deload week — reduce load by 40%"

// WeekSpec is one week of a generated plan. Volume and intensity are on
// the relative 1-10 generation scale; the persistence layer stores them
// multiplied by ten.
type WeekSpec struct {
	WeekNumber      int
	Phase           Phase
	VolumeScore     int
	IntensityScore  int
	WorkoutsPerWeek int
	StartDate       string
	Notes           string
}

// lerp interpolates between a and b and rounds to the nearest integer.
func lerp(a, b int, t float64) int {
	return int(math.Round(float64(a) + float64(b-a)*t))
}

// BuildWeekSpecs computes the phase, volume, and intensity for every
// training week from startDate until targetDate. Deterministic: the same
// inputs always produce the same specs.
//
// Weeks inside base and build blocks deload every 4th week: the week keeps
// its position-based progress through the block but takes its volume,
// intensity, and workout count from the recovery row. The resulting dip in
// the curve is the deload stimulus, not an artifact.
func BuildWeekSpecs(startDate, targetDate string) ([]WeekSpec, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	target, err := parseDate(targetDate)
	if err != nil {
		return nil, fmt.Errorf("invalid target date %q: %w", targetDate, err)
	}

	const week = 7 * 24 * 60 * 60 // seconds
	totalWeeks := int(math.Ceil(target.Sub(start).Seconds() / week))
	if totalWeeks < 1 {
		totalWeeks = 1
	}

	monday, err := MondayOf(startDate)
	if err != nil {
		return nil, err
	}

	specs := make([]WeekSpec, 0, totalWeeks)
	weekNum := 1
	for _, block := range phaseBlocks(totalWeeks) {
		for i := 0; i < block.Weeks; i++ {
			deload := (block.Phase == PhaseBase || block.Phase == PhaseBuild) &&
				(i+1)%4 == 0

			phase := block.Phase
			if deload {
				phase = PhaseRecovery
			}
			params := paramsFor(phase)

			progress := 0.0
			if block.Weeks > 1 {
				progress = float64(i) / float64(block.Weeks-1)
			}

			spec := WeekSpec{
				WeekNumber:      weekNum,
				Phase:           phase,
				VolumeScore:     lerp(params.VolumeLow, params.VolumeHigh, progress),
				IntensityScore:  lerp(params.IntensityLow, params.IntensityHigh, progress),
				WorkoutsPerWeek: params.WorkoutsPerWeek,
				StartDate:       monday,
			}
			if deload {
				spec.Notes = DeloadNote
			}
			specs = append(specs, spec)
			weekNum++

			monday, err = AddWeeks(monday, 1)
			if err != nil {
				return nil, err
			}
		}
	}
	return specs, nil
}

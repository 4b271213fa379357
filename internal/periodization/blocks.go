// internal/periodization/blocks.go
package periodization

// phaseBlock is a run of consecutive weeks sharing a nominal phase.
type phaseBlock struct {
	Phase Phase
	Weeks int
}

// phaseBlocks partitions totalWeeks into training-phase blocks. The
// remainder formulation guarantees block weeks always sum to totalWeeks.
func phaseBlocks(totalWeeks int) []phaseBlock {
	if totalWeeks < 4 {
		// Too close to the goal for a real ramp; everything is peak.
		return []phaseBlock{{Phase: PhasePeak, Weeks: totalWeeks}}
	}
	if totalWeeks < 8 {
		build := totalWeeks * 4 / 10
		if build < 1 {
			build = 1
		}
		return []phaseBlock{
			{Phase: PhaseBuild, Weeks: build},
			{Phase: PhasePeak, Weeks: totalWeeks - build},
		}
	}
	if totalWeeks < 16 {
		peak := totalWeeks * 25 / 100
		if peak < 3 {
			peak = 3
		}
		build := (totalWeeks - peak) * 55 / 100
		base := totalWeeks - peak - build
		return []phaseBlock{
			{Phase: PhaseBase, Weeks: base},
			{Phase: PhaseBuild, Weeks: build},
			{Phase: PhasePeak, Weeks: peak},
		}
	}
	// 16+ weeks, full periodization
	peak := totalWeeks * 2 / 10
	if peak < 4 {
		peak = 4
	}
	build := totalWeeks * 4 / 10
	base := totalWeeks - peak - build
	return []phaseBlock{
		{Phase: PhaseBase, Weeks: base},
		{Phase: PhaseBuild, Weeks: build},
		{Phase: PhasePeak, Weeks: peak},
	}
}

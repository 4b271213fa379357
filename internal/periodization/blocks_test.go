package periodization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseBlocks(t *testing.T) {
	tests := []struct {
		name  string
		weeks int
		want  []phaseBlock
	}{
		{"one week is all peak", 1, []phaseBlock{{PhasePeak, 1}}},
		{"three weeks is all peak", 3, []phaseBlock{{PhasePeak, 3}}},
		{"four weeks splits build and peak", 4, []phaseBlock{{PhaseBuild, 1}, {PhasePeak, 3}}},
		{"seven weeks", 7, []phaseBlock{{PhaseBuild, 2}, {PhasePeak, 5}}},
		{"eight weeks adds a base block", 8, []phaseBlock{{PhaseBase, 3}, {PhaseBuild, 2}, {PhasePeak, 3}}},
		{"ten weeks", 10, []phaseBlock{{PhaseBase, 4}, {PhaseBuild, 3}, {PhasePeak, 3}}},
		{"fifteen weeks", 15, []phaseBlock{{PhaseBase, 6}, {PhaseBuild, 6}, {PhasePeak, 3}}},
		{"sixteen weeks, full periodization", 16, []phaseBlock{{PhaseBase, 6}, {PhaseBuild, 6}, {PhasePeak, 4}}},
		{"twenty weeks", 20, []phaseBlock{{PhaseBase, 8}, {PhaseBuild, 8}, {PhasePeak, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := phaseBlocks(tt.weeks)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Block weeks must always sum back to the requested total, whatever the
// rounding inside the split does.
func TestPhaseBlocksSumInvariant(t *testing.T) {
	for weeks := 1; weeks <= 60; weeks++ {
		sum := 0
		for _, b := range phaseBlocks(weeks) {
			assert.Positive(t, b.Weeks, "weeks=%d produced an empty block", weeks)
			sum += b.Weeks
		}
		assert.Equal(t, weeks, sum, "weeks=%d", weeks)
	}
}

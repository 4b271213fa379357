package periodization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"monday maps to itself", "2026-01-05", "2026-01-05"},
		{"thursday maps back", "2026-01-01", "2025-12-29"},
		{"sunday maps six days back", "2026-01-25", "2026-01-19"},
		{"saturday maps back", "2026-01-24", "2026-01-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MondayOf(tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMondayOfInvalidDate(t *testing.T) {
	_, err := MondayOf("not-a-date")
	assert.Error(t, err)

	_, err = MondayOf("2026/01/05")
	assert.Error(t, err)
}

func TestAddWeeks(t *testing.T) {
	got, err := AddWeeks("2026-01-05", 1)
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-12", got)

	got, err = AddWeeks("2026-01-05", 10)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-16", got)

	// Crossing a month boundary
	got, err = AddWeeks("2026-01-26", 1)
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-02", got)
}

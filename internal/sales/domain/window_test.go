package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	asOf := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	window := DayWindow(asOf, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), window.Start)

	// Both ends of the day count
	assert.True(t, window.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2024, time.March, 15, 23, 59, 59, 999000000, time.UTC)))

	// One millisecond either side falls out
	assert.False(t, window.Contains(time.Date(2024, time.March, 14, 23, 59, 59, 999000000, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, time.March, 16, 0, 0, 0, 1000000, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)))
}

func TestDayWindowRespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on the 15th is still the evening of the 14th in New York
	asOf := time.Date(2024, time.March, 15, 2, 0, 0, 0, time.UTC)
	window := DayWindow(asOf, loc)

	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, loc), window.Start)
	assert.True(t, window.Contains(asOf))
}

func TestPreviousMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		asOf      time.Time
		wantStart time.Time
		wantIn    time.Time
		wantOut   time.Time
	}{
		{
			name:      "mid month",
			asOf:      time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantIn:    time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
			wantOut:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "first day of month",
			asOf:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantIn:    time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			wantOut:   time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "january looks back across the year",
			asOf:      time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantIn:    time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantOut:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := PreviousMonthWindow(tt.asOf, time.UTC)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.True(t, window.Contains(tt.wantIn))
			assert.False(t, window.Contains(tt.wantOut))

			// The current month never leaks in, whatever the day of month
			assert.False(t, window.Contains(tt.asOf))
		})
	}
}

func TestPreviousMonthWindowLeapFebruary(t *testing.T) {
	window := PreviousMonthWindow(time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC), time.UTC)

	assert.True(t, window.Contains(time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)))
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(2 * time.Hour)
	assert.Equal(t, start.Add(2*time.Hour), clk.Now())

	pinned := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	clk.Set(pinned)
	assert.Equal(t, pinned, clk.Now())
}

func TestRealClock(t *testing.T) {
	clk := NewRealClock()
	before := time.Now()
	now := clk.Now()
	assert.False(t, now.Before(before))
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_ReturnsUTC(t *testing.T) {
	now := NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(2 * time.Hour)
	assert.Equal(t, start.Add(2*time.Hour), clk.Now())

	later := start.AddDate(0, 1, 0)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}

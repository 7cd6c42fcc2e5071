package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_ReturnsUTC(t *testing.T) {
	now := NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mockClock := NewMockClock(start)

	assert.Equal(t, start, mockClock.Now())

	mockClock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), mockClock.Now())

	later := start.Add(24 * time.Hour)
	mockClock.Set(later)
	assert.Equal(t, later, mockClock.Now())
}

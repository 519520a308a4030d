package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2018, 5, 10, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	// Always returns the fixed time.
	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	initialTime := time.Date(2018, 5, 10, 10, 0, 0, 0, time.UTC)
	newTime := time.Date(2018, 5, 12, 14, 30, 0, 0, time.UTC)

	clock := NewMockClock(initialTime)
	clock.Set(newTime)

	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClock(time.Date(2018, 5, 10, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2018, 5, 10, 10, 30, 0, 0, time.UTC), clock.Now())

	clock.AdvanceDays(2)
	assert.Equal(t, time.Date(2018, 5, 12, 10, 30, 0, 0, time.UTC), clock.Now())
}

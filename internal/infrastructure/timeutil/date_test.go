package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2018, 5, 10, 15, 42, 7, 999, time.UTC)

	got := DateOnly(in)

	assert.Equal(t, time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, DateOnly(got), "already-normalized dates are unchanged")
}

func TestDatesBetween(t *testing.T) {
	start := time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC)

	days := DatesBetween(start, end)

	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2018, 5, 11, 0, 0, 0, 0, time.UTC), days[1])
	assert.Equal(t, time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC), days[2])
}

func TestDatesBetweenSingleDay(t *testing.T) {
	day := time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC)

	days := DatesBetween(day, day)

	require.Len(t, days, 1)
	assert.Equal(t, day, days[0])
}

func TestDatesBetweenNormalizesStartTimeOfDay(t *testing.T) {
	start := time.Date(2018, 5, 10, 17, 30, 0, 0, time.UTC)
	end := time.Date(2018, 5, 11, 0, 0, 0, 0, time.UTC)

	days := DatesBetween(start, end)

	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), days[0])
}

func TestDatesBetweenEndBeforeStart(t *testing.T) {
	start := time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, DatesBetween(start, end))
}

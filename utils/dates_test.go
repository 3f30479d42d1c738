package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	in := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	out := time.Date(2026, time.March, 13, 11, 0, 0, 0, time.UTC)

	// clock times are irrelevant, only calendar days count
	assert.Equal(t, 3, DaysBetween(in, out))
	assert.Equal(t, 0, DaysBetween(in, in))
}

func TestBeginningAndEndOfDay(t *testing.T) {
	at := time.Date(2026, time.March, 10, 15, 30, 45, 123, time.UTC)

	start := BeginningOfDay(at)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(at)
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)

	// timestamps are truncated to their day
	got, err = ParseDate("2026-03-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 0, got.Hour())

	_, err = ParseDate("10/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	at := time.Date(2026, time.February, 17, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), MonthStart(at))
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), MonthEnd(at))

	leap := time.Date(2028, time.February, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, MonthEnd(leap).Day())
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 4, 8, 9, 5, 13, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	for _, bad := range []string{"", "1030", "25:00", "10:60", "9:30", "10:3", "ab:cd", "10:30:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(510)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("18:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1110, minutes)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("08:30").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("18:30").IsAfter(TimeString("08:30")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Sarajevo")
	require.NoError(t, err)

	day := time.Date(2025, 4, 8, 0, 0, 0, 0, loc)
	moment, err := TimeString("10:30").At(day, loc)
	require.NoError(t, err)

	assert.Equal(t, 10, moment.Hour())
	assert.Equal(t, 30, moment.Minute())
	assert.Equal(t, loc, moment.Location())
}

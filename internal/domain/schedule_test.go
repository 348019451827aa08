package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewBookingWindow(t *testing.T) {
	now := time.Date(2025, 4, 7, 15, 30, 0, 0, time.UTC)

	w := NewBookingWindow(now, time.Time{}, 7)
	assert.Equal(t, day(2025, 4, 7), w.Start)
	assert.Equal(t, day(2025, 4, 14), w.End)

	// Минимальная дата в будущем сдвигает начало окна
	w = NewBookingWindow(now, day(2025, 4, 10), 7)
	assert.Equal(t, day(2025, 4, 10), w.Start)
	assert.Equal(t, day(2025, 4, 17), w.End)

	// Минимальная дата в прошлом не влияет
	w = NewBookingWindow(now, day(2025, 1, 1), 7)
	assert.Equal(t, day(2025, 4, 7), w.Start)
}

func TestBookingWindowContains(t *testing.T) {
	w := NewBookingWindow(time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC), time.Time{}, 7)

	assert.True(t, w.Contains(day(2025, 4, 7)))
	assert.True(t, w.Contains(day(2025, 4, 14)))
	assert.True(t, w.Contains(time.Date(2025, 4, 10, 23, 59, 0, 0, time.UTC)))

	assert.False(t, w.Contains(day(2025, 4, 6)))
	assert.False(t, w.Contains(day(2025, 4, 15)))
}

func TestBookingWindowIsLastDay(t *testing.T) {
	w := NewBookingWindow(time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC), time.Time{}, 7)

	assert.True(t, w.IsLastDay(day(2025, 4, 14)))
	assert.False(t, w.IsLastDay(day(2025, 4, 13)))
}

func TestIsClosedDay(t *testing.T) {
	assert.True(t, IsClosedDay(day(2025, 4, 13))) // воскресенье
	assert.False(t, IsClosedDay(day(2025, 4, 12)))
	assert.False(t, IsClosedDay(day(2025, 4, 14)))
}

func TestAppointmentEndTime(t *testing.T) {
	a := &Appointment{
		Service:   ServiceFade,
		StartTime: time.Date(2025, 4, 8, 8, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2025, 4, 8, 8, 20, 0, 0, time.UTC), a.EndTime())
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2025, 4, 8, 10, 0, 0, 0, time.UTC)

	assert.True(t, (&Appointment{StartTime: now.Add(time.Hour)}).IsUpcoming(now))
	assert.False(t, (&Appointment{StartTime: now.Add(-time.Hour)}).IsUpcoming(now))
	assert.False(t, (&Appointment{StartTime: now}).IsUpcoming(now))
}

func TestAnnouncementIsActive(t *testing.T) {
	now := time.Date(2025, 4, 8, 10, 0, 0, 0, time.UTC)
	a := &Announcement{
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}

	assert.True(t, a.IsActive(now))
	assert.False(t, a.IsActive(now.Add(-2*time.Hour)))
	assert.False(t, a.IsActive(now.Add(2*time.Hour)))
}

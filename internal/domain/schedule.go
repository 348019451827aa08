package domain

import "time"

// BlockedDate is a whole calendar day the admin marked unavailable
// (vacation, holidays). Date-only; no time component.
type BlockedDate struct {
	Date time.Time
}

// BookingWindow is the rolling interval of days in which customers may book:
// [max(today, MinDate), Start + Days]. Computed from the wall clock at query
// time, never persisted.
type BookingWindow struct {
	Start time.Time
	End   time.Time
}

// NewBookingWindow computes the window for the given instant. All three
// arguments are interpreted as dates in the shop timezone.
func NewBookingWindow(now, minDate time.Time, days int) BookingWindow {
	start := truncateToDay(now)
	if min := truncateToDay(minDate); min.After(start) {
		start = min
	}
	return BookingWindow{
		Start: start,
		End:   start.AddDate(0, 0, days),
	}
}

// Contains returns true if day falls inside the window (inclusive bounds)
func (w BookingWindow) Contains(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(w.Start) && !d.After(w.End)
}

// IsLastDay returns true if day is the final day of the window
func (w BookingWindow) IsLastDay(day time.Time) bool {
	return sameDay(day, w.End)
}

// IsClosedDay returns true for days the shop never opens. The shop is
// closed on Sundays.
func IsClosedDay(day time.Time) bool {
	return day.Weekday() == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

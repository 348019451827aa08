package domain

import "time"

// Announcement is a message the admin shows to customers on the booking
// page (changed hours, vacations, promotions).
type Announcement struct {
	ID        int64
	Message   string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
}

// IsActive returns true if the announcement should be displayed at the
// given instant
func (a *Announcement) IsActive(now time.Time) bool {
	return !now.Before(a.StartsAt) && now.Before(a.EndsAt)
}

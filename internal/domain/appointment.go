package domain

import "time"

// Appointment represents one reserved interval of the barber's chair.
// The interval is [StartTime, StartTime + service duration); StartTime is
// always stored in UTC and converted to the shop timezone only at the edges.
type Appointment struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Service       ServiceType
	StartTime     time.Time
	OwnerUserID   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the instant the appointment finishes
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(ServiceDuration(a.Service)) * time.Minute)
}

// IsUpcoming returns true if the appointment starts after the given instant
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.StartTime.After(now)
}

// CanceledAppointment is the append-only audit record written when a live
// appointment is removed. It copies every appointment field; it is never
// read back by the slot allocator.
type CanceledAppointment struct {
	ID              int64
	OriginalID      int64
	CustomerName    string
	CustomerPhone   string
	Service         ServiceType
	StartTime       time.Time
	OwnerUserID     string
	CanceledByAdmin bool
	CanceledAt      time.Time
}

// NewCancellationRecord builds the audit record for an appointment being canceled
func NewCancellationRecord(a *Appointment, byAdmin bool) *CanceledAppointment {
	return &CanceledAppointment{
		OriginalID:      a.ID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		Service:         a.Service,
		StartTime:       a.StartTime,
		OwnerUserID:     a.OwnerUserID,
		CanceledByAdmin: byAdmin,
	}
}

// CustomerProfile is the denormalized name/phone pair upserted after a
// successful reservation. Best-effort only.
type CustomerProfile struct {
	UserID      string
	Name        string
	PhoneNumber string
	UpdatedAt   time.Time
}

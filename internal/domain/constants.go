package domain

// Catalog fallbacks for unknown service identifiers
const (
	DefaultServiceDurationMinutes = 30
	UnknownServiceName            = "Unknown service"
)

// Default business schedule. The shop has a single chair; hours and slot
// granularity can be overridden in config but these match the storefront.
const (
	DefaultBusinessStart = "08:30"
	DefaultBusinessEnd   = "18:30"
	DefaultSlotStep      = 30
)

// Booking window defaults
const (
	// DefaultBookingWindowDays number of days ahead of the window start a
	// customer may book (the window is [start, start+N]).
	DefaultBookingWindowDays = 7

	// MaxUpcomingPerUser maximum number of simultaneous future appointments
	// one customer may hold.
	MaxUpcomingPerUser = 3
)

// Validation limits
const (
	MaxCustomerNameLength = 100
	MaxPhoneNumberLength  = 20
	MaxAnnouncementLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

package create_booking

import "errors"

var (
	ErrInvalidInput     = errors.New("create_booking: invalid input")
	ErrUnknownService   = errors.New("create_booking: unknown service")
	ErrOutsideWindow    = errors.New("create_booking: date outside booking window")
	ErrClosedDay        = errors.New("create_booking: shop closed on this day")
	ErrDateBlocked      = errors.New("create_booking: date is blocked")
	ErrQuotaExceeded    = errors.New("create_booking: upcoming bookings limit reached")
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")
	ErrInternal         = errors.New("create_booking: internal error")
)

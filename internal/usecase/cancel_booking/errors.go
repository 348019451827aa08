package cancel_booking

import "errors"

var (
	ErrInvalidInput        = errors.New("cancel_booking: invalid input")
	ErrAppointmentNotFound = errors.New("cancel_booking: appointment not found")
	ErrAccessDenied        = errors.New("cancel_booking: access denied")
	ErrInternal            = errors.New("cancel_booking: internal error")
)

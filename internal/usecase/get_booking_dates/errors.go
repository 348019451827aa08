package get_booking_dates

import "errors"

var (
	ErrInvalidInput = errors.New("get_booking_dates: invalid input")
	ErrInternal     = errors.New("get_booking_dates: internal error")
)

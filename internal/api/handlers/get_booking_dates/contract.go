package get_booking_dates

import (
	"context"

	getDates "github.com/frizerhub/Barber-BookingService/internal/usecase/get_booking_dates"
)

type GetBookingDatesUseCase interface {
	Execute(ctx context.Context, req *getDates.Request) (*getDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_user_bookings

import (
	"context"

	"github.com/frizerhub/Barber-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

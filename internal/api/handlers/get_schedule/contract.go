package get_schedule

import (
	"context"

	"github.com/frizerhub/Barber-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetSchedule(ctx context.Context, fromDate, toDate string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

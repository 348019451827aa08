package appointments

import (
	"context"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	ListUpcomingByUser(ctx context.Context, userID string, from time.Time, limit uint64) ([]*domain.Appointment, error)
}

// CancellationStore интерфейс журнала отменённых записей
type CancellationStore interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.CanceledAppointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

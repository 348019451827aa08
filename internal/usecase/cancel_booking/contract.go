package cancel_booking

import (
	"context"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// CancellationStore интерфейс журнала отменённых записей
type CancellationStore interface {
	Insert(ctx context.Context, record *domain.CanceledAppointment) error
}

// SMSSender интерфейс отправки SMS-уведомлений
type SMSSender interface {
	Send(ctx context.Context, toPhoneNumber, message string) error
}

// EventPublisher интерфейс издателя событий изменения расписания
type EventPublisher interface {
	AppointmentCanceled(ctx context.Context, appt *domain.Appointment)
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

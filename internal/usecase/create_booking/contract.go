package create_booking

import (
	"context"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	CountUpcomingByUser(ctx context.Context, userID string, from time.Time) (int, error)
}

// BlockedDateStore интерфейс хранилища заблокированных дат
type BlockedDateStore interface {
	ListFrom(ctx context.Context, from time.Time) ([]domain.BlockedDate, error)
}

// ProfileRepository интерфейс репозитория профилей клиентов
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.CustomerProfile) error
}

// EventPublisher интерфейс издателя событий изменения расписания
type EventPublisher interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package schedule

import (
	"context"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// BlockedDateRepository интерфейс хранилища заблокированных дат
type BlockedDateRepository interface {
	ListFrom(ctx context.Context, from time.Time) ([]domain.BlockedDate, error)
	Create(ctx context.Context, date time.Time) error
	Delete(ctx context.Context, date time.Time) error
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

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// Типы событий изменения расписания
const (
	EventAppointmentCreated  = "appointment.created"
	EventAppointmentCanceled = "appointment.canceled"
)

// AppointmentEvent событие изменения расписания, публикуемое в Redis.
// UI подписывается на канал и перечитывает расписание при каждом событии.
type AppointmentEvent struct {
	Type            string    `json:"type"`
	AppointmentID   int64     `json:"appointmentId"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Service         int       `json:"service"`
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RedisPublisher публикует события изменения расписания через Redis PUB/SUB.
// Публикация best-effort: подписчиков может не быть, доставка не гарантируется.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  Logger
}

// NewRedisPublisher создает издателя событий поверх Redis
func NewRedisPublisher(client *redis.Client, channel string, logger Logger) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// AppointmentCreated публикует событие о новой записи
func (p *RedisPublisher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) {
	p.publish(ctx, AppointmentEvent{
		Type:            EventAppointmentCreated,
		AppointmentID:   appt.ID,
		AppointmentTime: appt.StartTime,
		Service:         int(appt.Service),
	})
}

// AppointmentCanceled публикует событие об отмене записи
func (p *RedisPublisher) AppointmentCanceled(ctx context.Context, appt *domain.Appointment) {
	p.publish(ctx, AppointmentEvent{
		Type:            EventAppointmentCanceled,
		AppointmentID:   appt.ID,
		AppointmentTime: appt.StartTime,
		Service:         int(appt.Service),
	})
}

func (p *RedisPublisher) publish(ctx context.Context, event AppointmentEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("events: failed to marshal %s event: %v", event.Type, err)
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Warn("events: failed to publish %s event: %v", event.Type, err)
	}
}

// Ping проверяет соединение с Redis при старте сервиса
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("events: redis ping: %w", err)
	}
	return nil
}

// NoopPublisher издатель-заглушка, когда Redis выключен в конфигурации
type NoopPublisher struct{}

// NewNoopPublisher создает издателя-заглушку
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// AppointmentCreated ничего не делает
func (p *NoopPublisher) AppointmentCreated(_ context.Context, _ *domain.Appointment) {}

// AppointmentCanceled ничего не делает
func (p *NoopPublisher) AppointmentCanceled(_ context.Context, _ *domain.Appointment) {}

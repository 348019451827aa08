package announcements

import (
	"context"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/service/announcements/models"
)

type AnnouncementService interface {
	ListActive(ctx context.Context) (*models.AnnouncementListResponse, error)
	Create(ctx context.Context, message string, startsAt, endsAt time.Time) (*models.AnnouncementResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

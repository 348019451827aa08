package announcements

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	announcementRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/announcement"
	"github.com/frizerhub/Barber-BookingService/internal/service/announcements/models"
)

// Service сервис объявлений для страницы бронирования
type Service struct {
	announcements AnnouncementRepository
	policy        domain.BookingPolicy
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(
	announcements AnnouncementRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		announcements: announcements,
		policy:        policy,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// ListActive возвращает объявления, действующие в данный момент
func (s *Service) ListActive(ctx context.Context) (*models.AnnouncementListResponse, error) {
	now := s.timeProvider.Now()

	list, err := s.announcements.ListActive(ctx, now)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAnnouncementList(list, s.policy.Location)
	return &resp, nil
}

// Create публикует объявление.
// EndsAt в прошлом или раньше StartsAt отклоняются сразу.
func (s *Service) Create(ctx context.Context, message string, startsAt, endsAt time.Time) (*models.AnnouncementResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(message) > domain.MaxAnnouncementLength {
		return nil, fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}
	if !endsAt.After(startsAt) {
		return nil, fmt.Errorf("%w: period end must be after start", ErrInvalidInput)
	}
	if endsAt.Before(s.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: period is already over", ErrInvalidInput)
	}

	s.logger.Info("Create: publishing announcement for period=%s to %s",
		startsAt.Format(time.RFC3339), endsAt.Format(time.RFC3339))

	created, err := s.announcements.Create(ctx, &domain.Announcement{
		Message:  message,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAnnouncement(created, s.policy.Location)
	return &resp, nil
}

// Delete снимает объявление
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: announcement id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Delete: removing announcement id=%d", id)

	if err := s.announcements.Delete(ctx, id); err != nil {
		if errors.Is(err, announcementRepo.ErrAnnouncementNotFound) {
			s.logger.Warn("Delete: announcement id=%d not found", id)
			return ErrAnnouncementNotFound
		}
		s.logger.Error("Delete: repository error for announcement id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

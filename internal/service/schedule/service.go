package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	blockedRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/blockeddate"
)

// Service сервис управления заблокированными датами
type Service struct {
	blockedDates BlockedDateRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	blockedDates BlockedDateRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		blockedDates: blockedDates,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListBlockedDates возвращает заблокированные даты начиная с сегодняшней
func (s *Service) ListBlockedDates(ctx context.Context) ([]string, error) {
	now := s.timeProvider.Now().In(s.policy.Location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.policy.Location)

	blocked, err := s.blockedDates.ListFrom(ctx, from)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	dates := make([]string, 0, len(blocked))
	for _, b := range blocked {
		dates = append(dates, b.Date.Format(domain.DateFormat))
	}
	return dates, nil
}

// BlockDate закрывает дату для бронирования.
// Повторная блокировка уже заблокированной даты не является ошибкой.
func (s *Service) BlockDate(ctx context.Context, date string) error {
	day, err := s.parseDate(date)
	if err != nil {
		return err
	}

	s.logger.Info("BlockDate: blocking date=%s", date)

	if err := s.blockedDates.Create(ctx, day); err != nil {
		s.logger.Error("BlockDate: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}
	return nil
}

// UnblockDate снова открывает дату для бронирования
func (s *Service) UnblockDate(ctx context.Context, date string) error {
	day, err := s.parseDate(date)
	if err != nil {
		return err
	}

	s.logger.Info("UnblockDate: unblocking date=%s", date)

	if err := s.blockedDates.Delete(ctx, day); err != nil {
		if errors.Is(err, blockedRepo.ErrDateNotFound) {
			s.logger.Warn("UnblockDate: date=%s was not blocked", date)
			return ErrDateNotFound
		}
		s.logger.Error("UnblockDate: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) parseDate(date string) (time.Time, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, date)
	}
	return day, nil
}

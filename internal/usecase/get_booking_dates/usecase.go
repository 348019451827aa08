package get_booking_dates

import (
	"context"
	"fmt"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// UseCase use case перечисления дат окна бронирования, открытых для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedDates    BlockedDateStore
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedDates BlockedDateStore,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedDates:    blockedDates,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case запроса доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(uc.policy.Location)
	window := uc.policy.Window(now)

	blocked, err := uc.blockedDates.ListFrom(ctx, window.Start)
	if err != nil {
		uc.logger.Error("GetBookingDates: list blocked dates failed: %v", err)
		return nil, fmt.Errorf("%w: list blocked dates: %v", ErrInternal, err)
	}
	blockedSet := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.Date.Format(domain.DateFormat)] = struct{}{}
	}

	dates := make([]string, 0, uc.policy.WindowDays+1)
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		if domain.IsClosedDay(day) {
			continue
		}
		formatted := day.Format(domain.DateFormat)
		if _, ok := blockedSet[formatted]; ok {
			continue
		}
		dates = append(dates, formatted)
	}

	count, err := uc.appointmentRepo.CountUpcomingByUser(ctx, req.UserID, now.UTC())
	if err != nil {
		uc.logger.Error("GetBookingDates: count upcoming for user=%s failed: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: count upcoming: %v", ErrInternal, err)
	}

	return &Response{
		Dates:        dates,
		QuotaReached: count >= uc.policy.MaxUpcomingPerUser,
	}, nil
}

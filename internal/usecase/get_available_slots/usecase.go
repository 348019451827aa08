package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/internal/scheduling"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// UseCase use case вычисления свободных слотов на дату.
//
// Для дат вне окна бронирования, воскресений и заблокированных дат
// возвращается пустой список, а не ошибка: для клиента это равнозначно
// дню без свободного времени.
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

// Execute выполняет use case запроса свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(uc.policy.Location)
	dayLocal := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)
	date := dayLocal.Format(domain.DateFormat)

	window := uc.policy.Window(now)
	if !window.Contains(dayLocal) || domain.IsClosedDay(dayLocal) {
		return &Response{Date: dayLocal, Slots: []types.TimeString{}}, nil
	}

	blocked, err := uc.blockedDates.ListFrom(ctx, window.Start)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: list blocked dates failed: %v", err)
		return nil, fmt.Errorf("%w: list blocked dates: %v", ErrInternal, err)
	}
	for _, b := range blocked {
		if b.Date.Format(domain.DateFormat) == date {
			return &Response{Date: dayLocal, Slots: []types.TimeString{}}, nil
		}
	}

	booked, err := uc.appointmentRepo.ListByDateRange(ctx, dayLocal.UTC(), dayLocal.AddDate(0, 0, 1).UTC())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: list appointments for date=%s failed: %v", date, err)
		return nil, fmt.Errorf("%w: list appointments: %v", ErrInternal, err)
	}
	intervals := uc.bookedIntervals(booked)

	bounds := scheduling.DayBounds{
		Day:           dayLocal,
		Now:           now,
		BusinessStart: uc.policy.BusinessStart,
		BusinessEnd:   uc.policy.BusinessEnd,
		StepMinutes:   uc.policy.SlotStepMinutes,
		LastWindowDay: window.IsLastDay(dayLocal),
	}

	slots := scheduling.ListOpenSlots(bounds, intervals)
	if req.Service != nil {
		slots = scheduling.FilterForService(slots, domain.ServiceDuration(*req.Service), intervals, uc.policy.BusinessEnd)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots available", date, len(slots))
	return &Response{Date: dayLocal, Slots: slots}, nil
}

// bookedIntervals переводит записи дня в занятые интервалы локального времени
func (uc *UseCase) bookedIntervals(booked []*domain.Appointment) []scheduling.Interval {
	intervals := make([]scheduling.Interval, 0, len(booked))
	for _, a := range booked {
		start := types.NewTimeString(a.StartTime.In(uc.policy.Location))
		end, err := start.AddMinutes(domain.ServiceDuration(a.Service))
		if err != nil {
			continue
		}
		intervals = append(intervals, scheduling.Interval{Start: start, End: end})
	}
	return intervals
}

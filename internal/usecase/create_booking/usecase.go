package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/frizerhub/Barber-BookingService/internal/scheduling"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// UseCase use case для создания записи.
//
// Проверки до транзакции: окно бронирования, выходные и заблокированные
// даты, лимит активных записей пользователя. Внутри сериализуемой
// транзакции день перечитывается с блокировкой и слот проверяется заново,
// окончательную защиту от гонок даёт уникальный индекс по времени записи.
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedDates    BlockedDateStore
	profileRepo     ProfileRepository
	events          EventPublisher
	txManager       TransactionManager
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedDates BlockedDateStore,
	profileRepo ProfileRepository,
	events EventPublisher,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedDates:    blockedDates,
		profileRepo:     profileRepo,
		events:          events,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%d, date=%s, time=%s",
		req.UserID, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.policy.Location)
	dayLocal := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)
	date := dayLocal.Format(domain.DateFormat)

	// 3. Проверяем, что дата открыта для бронирования
	window := uc.policy.Window(now)
	if !window.Contains(dayLocal) {
		uc.logger.Warn("CreateBooking: date=%s outside booking window", date)
		return nil, fmt.Errorf("%w: %s", ErrOutsideWindow, date)
	}
	if domain.IsClosedDay(dayLocal) {
		uc.logger.Warn("CreateBooking: date=%s is a closed day", date)
		return nil, fmt.Errorf("%w: %s", ErrClosedDay, date)
	}
	if err := uc.checkNotBlocked(ctx, window.Start, date); err != nil {
		return nil, err
	}

	// 4. Проверяем, что время попадает на границу слота и ещё не прошло
	if err := uc.checkSlotShape(req.StartTime); err != nil {
		return nil, err
	}
	startLocal, err := req.StartTime.At(dayLocal, uc.policy.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if startLocal.Before(now) {
		uc.logger.Warn("CreateBooking: slot %s %s already passed", date, req.StartTime)
		return nil, fmt.Errorf("%w: time already passed", ErrSlotNotAvailable)
	}

	// 5. Проверяем лимит активных записей пользователя до любых изменений
	count, err := uc.appointmentRepo.CountUpcomingByUser(ctx, req.UserID, now.UTC())
	if err != nil {
		uc.logger.Error("CreateBooking: count upcoming for user=%s failed: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: count upcoming: %v", ErrInternal, err)
	}
	if count >= uc.policy.MaxUpcomingPerUser {
		uc.logger.Warn("CreateBooking: user=%s reached booking limit (%d)", req.UserID, count)
		return nil, fmt.Errorf("%w: %d of %d", ErrQuotaExceeded, count, uc.policy.MaxUpcomingPerUser)
	}

	// 6. В сериализуемой транзакции перечитываем день и создаём запись
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booked, err := uc.appointmentRepo.ListByDateRange(txCtx, dayLocal.UTC(), dayLocal.AddDate(0, 0, 1).UTC())
		if err != nil {
			return fmt.Errorf("%w: list day: %v", ErrInternal, err)
		}

		duration := domain.ServiceDuration(req.Service)
		if !scheduling.IsAvailable(req.StartTime, duration, uc.bookedIntervals(booked), uc.policy.BusinessEnd) {
			return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, date, req.StartTime)
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Service:       req.Service,
			StartTime:     startLocal.UTC(),
			OwnerUserID:   req.UserID,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, date, req.StartTime)
			}
			return fmt.Errorf("%w: create: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: user=%s, date=%s, time=%s rejected: %v", req.UserID, date, req.StartTime, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: appointment id=%d created for user=%s at %s %s",
		created.ID, req.UserID, date, req.StartTime)

	// 7. Профиль клиента и событие обновляются по возможности, вне транзакции
	uc.rememberCustomer(ctx, req)
	uc.events.AppointmentCreated(ctx, created)

	return &Response{
		ID:              created.ID,
		CustomerName:    created.CustomerName,
		CustomerPhone:   created.CustomerPhone,
		Service:         created.Service,
		Date:            dayLocal,
		StartTime:       req.StartTime,
		ServiceName:     domain.ServiceName(created.Service),
		DurationMinutes: domain.ServiceDuration(created.Service),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// checkNotBlocked проверяет, не заблокирована ли дата администратором
func (uc *UseCase) checkNotBlocked(ctx context.Context, from time.Time, date string) error {
	blocked, err := uc.blockedDates.ListFrom(ctx, from)
	if err != nil {
		uc.logger.Error("CreateBooking: list blocked dates failed: %v", err)
		return fmt.Errorf("%w: list blocked dates: %v", ErrInternal, err)
	}
	for _, b := range blocked {
		if b.Date.Format(domain.DateFormat) == date {
			uc.logger.Warn("CreateBooking: date=%s is blocked", date)
			return fmt.Errorf("%w: %s", ErrDateBlocked, date)
		}
	}
	return nil
}

// checkSlotShape проверяет, что время попадает на границу сетки слотов
// внутри рабочих часов
func (uc *UseCase) checkSlotShape(t types.TimeString) error {
	if t.IsBefore(uc.policy.BusinessStart) || !t.IsBefore(uc.policy.BusinessEnd) {
		return fmt.Errorf("%w: %s is outside business hours", ErrSlotNotAvailable, t)
	}
	startMin, err := uc.policy.BusinessStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: business start: %v", ErrInternal, err)
	}
	slotMin, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if (slotMin-startMin)%uc.policy.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s is not a slot boundary", ErrSlotNotAvailable, t)
	}
	return nil
}

// bookedIntervals переводит записи дня в занятые интервалы локального времени
func (uc *UseCase) bookedIntervals(booked []*domain.Appointment) []scheduling.Interval {
	intervals := make([]scheduling.Interval, 0, len(booked))
	for _, a := range booked {
		start := types.NewTimeString(a.StartTime.In(uc.policy.Location))
		end, err := start.AddMinutes(domain.ServiceDuration(a.Service))
		if err != nil {
			// запись упирается в полночь, рабочий день заканчивается задолго до неё
			continue
		}
		intervals = append(intervals, scheduling.Interval{Start: start, End: end})
	}
	return intervals
}

// rememberCustomer обновляет профиль клиента, ошибка не прерывает сценарий
func (uc *UseCase) rememberCustomer(ctx context.Context, req *Request) {
	err := uc.profileRepo.Upsert(ctx, &domain.CustomerProfile{
		UserID:      req.UserID,
		Name:        req.CustomerName,
		PhoneNumber: req.CustomerPhone,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: profile upsert for user=%s failed: %v", req.UserID, err)
	}
}

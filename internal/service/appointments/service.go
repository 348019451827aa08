package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/frizerhub/Barber-BookingService/internal/service/appointments/models"
)

// Максимум записей, возвращаемых в истории пользователя
const userBookingsLimit = 50

// Service сервис чтения записей и расписания
type Service struct {
	appointments  AppointmentRepository
	cancellations CancellationStore
	policy        domain.BookingPolicy
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointments AppointmentRepository,
	cancellations CancellationStore,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		appointments:  appointments,
		cancellations: cancellations,
		policy:        policy,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID получает запись по ID
// Пользователь видит только свою запись, администратор - любую
func (s *Service) GetByID(ctx context.Context, id int64, userID string, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%s", id, userID)

	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && appt.OwnerUserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainAppointment(appt, s.policy.Location)
	return &resp, nil
}

// GetUserBookings получает предстоящие записи пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.AppointmentListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	now := s.timeProvider.Now().UTC()
	list, err := s.appointments.ListUpcomingByUser(ctx, userID, now, userBookingsLimit)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(list), userID)
	resp := models.FromDomainAppointmentList(list, s.policy.Location)
	return &resp, nil
}

// GetSchedule получает расписание за период вместе с журналом отмен.
// Доступно только администратору, границы интерпретируются как даты
// в часовом поясе барбершопа.
func (s *Service) GetSchedule(ctx context.Context, fromDate, toDate string) (*models.ScheduleResponse, error) {
	from, err := time.Parse(domain.DateFormat, fromDate)
	if err != nil {
		return nil, fmt.Errorf("%w: from date %q", ErrInvalidInput, fromDate)
	}
	to, err := time.Parse(domain.DateFormat, toDate)
	if err != nil {
		return nil, fmt.Errorf("%w: to date %q", ErrInvalidInput, toDate)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end is before start", ErrInvalidInput)
	}

	s.logger.Info("GetSchedule: fetching schedule for period=%s to %s", fromDate, toDate)

	loc := s.policy.Location
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc).UTC()
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1).UTC()

	appts, err := s.appointments.ListByDateRange(ctx, fromUTC, toUTC)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	canceled, err := s.cancellations.ListByDateRange(ctx, fromUTC, toUTC)
	if err != nil {
		s.logger.Error("GetSchedule: cancellations repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(appts)),
		Canceled:     make([]models.CanceledAppointmentResponse, 0, len(canceled)),
	}
	for _, a := range appts {
		resp.Appointments = append(resp.Appointments, models.FromDomainAppointment(a, loc))
	}
	for _, c := range canceled {
		resp.Canceled = append(resp.Canceled, models.FromDomainCanceled(c, loc))
	}

	s.logger.Info("GetSchedule: fetched %d appointments and %d cancellations", len(appts), len(canceled))
	return resp, nil
}

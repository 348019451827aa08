package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// Шаблон SMS-уведомления об отмене записи (язык клиентов барбершопа)
const cancelSMSTemplate = "Poštovani %s, Vaš termin (%s) %s u %s je otkazan. Molimo Vas da zakažete novi termin."

const smsTimeout = 10 * time.Second

// UseCase use case для отмены записи.
//
// Запись сначала копируется в журнал отмен, затем удаляется. Ошибка журнала
// не блокирует отмену. SMS-уведомление клиенту отправляется асинхронно,
// его неудача также не влияет на результат.
type UseCase struct {
	appointments  AppointmentRepository
	cancellations CancellationStore
	sms           SMSSender
	events        EventPublisher
	policy        domain.BookingPolicy
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentRepository,
	cancellations CancellationStore,
	sms SMSSender,
	events EventPublisher,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments:  appointments,
		cancellations: cancellations,
		sms:           sms,
		events:        events,
		policy:        policy,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отмены записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: appointment=%d, user=%s, admin=%t", req.AppointmentID, req.UserID, req.IsAdmin)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	appt, err := uc.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelBooking: appointment id=%d not found", req.AppointmentID)
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, req.AppointmentID)
		}
		uc.logger.Error("CancelBooking: get appointment id=%d failed: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: get appointment: %v", ErrInternal, err)
	}

	if !req.IsAdmin && appt.OwnerUserID != req.UserID {
		uc.logger.Warn("CancelBooking: access denied for user=%s to appointment id=%d", req.UserID, req.AppointmentID)
		return nil, fmt.Errorf("%w: appointment %d belongs to another user", ErrAccessDenied, req.AppointmentID)
	}

	if err := uc.cancellations.Insert(ctx, domain.NewCancellationRecord(appt, req.IsAdmin)); err != nil {
		// журнал отмен вспомогательный, отмену из-за него не прерываем
		uc.logger.Warn("CancelBooking: audit record for appointment id=%d failed: %v", appt.ID, err)
	}

	if err := uc.appointments.Delete(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelBooking: appointment id=%d already removed", req.AppointmentID)
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, req.AppointmentID)
		}
		uc.logger.Error("CancelBooking: delete appointment id=%d failed: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: appointment id=%d canceled by user=%s (admin=%t)",
		appt.ID, req.UserID, req.IsAdmin)

	// Клиент получает SMS, только когда администратор снимает его будущую запись
	if req.IsAdmin && appt.IsUpcoming(uc.timeProvider.Now()) {
		go uc.notifyCustomer(appt)
	}

	uc.events.AppointmentCanceled(ctx, appt)

	startLocal := appt.StartTime.In(uc.policy.Location)
	return &Response{
		ID:            appt.ID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Service:       appt.Service,
		ServiceName:   domain.ServiceName(appt.Service),
		Date:          startLocal,
		StartTime:     types.NewTimeString(startLocal),
	}, nil
}

// notifyCustomer отправляет клиенту SMS об отмене. Вызывается в отдельной
// горутине с собственным таймаутом, чтобы не зависеть от контекста запроса.
func (uc *UseCase) notifyCustomer(appt *domain.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), smsTimeout)
	defer cancel()

	startLocal := appt.StartTime.In(uc.policy.Location)
	body := fmt.Sprintf(cancelSMSTemplate,
		appt.CustomerName,
		domain.ServiceName(appt.Service),
		startLocal.Format(domain.DateFormat),
		startLocal.Format(domain.TimeFormat),
	)

	if err := uc.sms.Send(ctx, appt.CustomerPhone, body); err != nil {
		uc.logger.Warn("CancelBooking: sms for appointment id=%d to %s failed: %v", appt.ID, appt.CustomerPhone, err)
		return
	}
	uc.logger.Info("CancelBooking: sms sent for appointment id=%d", appt.ID)
}

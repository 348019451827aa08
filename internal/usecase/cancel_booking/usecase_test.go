package cancel_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appt      *domain.Appointment
	getErr    error
	deleteErr error

	deletedID int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appt, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeCancellations struct {
	err   error
	calls int
	last  *domain.CanceledAppointment
}

func (f *fakeCancellations) Insert(_ context.Context, record *domain.CanceledAppointment) error {
	f.calls++
	f.last = record
	return f.err
}

type fakeSMS struct {
	err  error
	sent chan string
}

func (f *fakeSMS) Send(_ context.Context, _, message string) error {
	f.sent <- message
	return f.err
}

type fakeEvents struct {
	canceled int
}

func (f *fakeEvents) AppointmentCanceled(_ context.Context, _ *domain.Appointment) {
	f.canceled++
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc            *UseCase
	repo          *fakeAppointmentRepo
	cancellations *fakeCancellations
	sms           *fakeSMS
	events        *fakeEvents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	policy, err := domain.NewBookingPolicy("Europe/Sarajevo", "08:30", "18:30", 30, 7, "", 3)
	require.NoError(t, err)

	f := &fixture{
		repo: &fakeAppointmentRepo{
			appt: &domain.Appointment{
				ID:            7,
				CustomerName:  "Amar",
				CustomerPhone: "061123456",
				Service:       domain.ServiceFade,
				StartTime:     time.Date(2025, 4, 8, 8, 0, 0, 0, time.UTC), // 10:00 по Сараеву
				OwnerUserID:   "user-1",
			},
		},
		cancellations: &fakeCancellations{},
		sms:           &fakeSMS{sent: make(chan string, 1)},
		events:        &fakeEvents{},
	}
	f.uc = NewUseCase(f.repo, f.cancellations, f.sms, f.events, policy, nopLogger{})
	f.uc.timeProvider = &fixedClock{now: testNow}
	return f
}

func TestExecute_OwnerCancelsOwnBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, int64(7), f.repo.deletedID)
	assert.Equal(t, 1, f.events.canceled)

	require.Equal(t, 1, f.cancellations.calls)
	assert.Equal(t, int64(7), f.cancellations.last.OriginalID)
	assert.False(t, f.cancellations.last.CanceledByAdmin)

	// Владелец отменяет сам - SMS не отправляется
	select {
	case msg := <-f.sms.sent:
		t.Fatalf("unexpected sms: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExecute_AdminCancelSendsSMS(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "admin-1", IsAdmin: true})
	require.NoError(t, err)

	assert.True(t, f.cancellations.last.CanceledByAdmin)

	select {
	case msg := <-f.sms.sent:
		assert.True(t, strings.Contains(msg, "Amar"), "sms should address the customer: %s", msg)
		assert.True(t, strings.Contains(msg, "Fade"), "sms should name the service: %s", msg)
		assert.True(t, strings.Contains(msg, "2025-04-08"), "sms should carry the local date: %s", msg)
		assert.True(t, strings.Contains(msg, "10:00"), "sms should carry the local time: %s", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("expected cancellation sms")
	}
}

func TestExecute_AdminCancelPastBookingWithoutSMS(t *testing.T) {
	f := newFixture(t)
	f.repo.appt.StartTime = testNow.Add(-24 * time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "admin-1", IsAdmin: true})
	require.NoError(t, err)

	select {
	case msg := <-f.sms.sent:
		t.Fatalf("unexpected sms for past booking: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExecute_SMSFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.sms.err = errors.New("sms gate is down")

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "admin-1", IsAdmin: true})

	require.NoError(t, err)
	<-f.sms.sent
	assert.Equal(t, int64(7), f.repo.deletedID)
}

func TestExecute_ForeignBookingDenied(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "intruder"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, f.repo.deletedID)
	assert.Zero(t, f.cancellations.calls)
	assert.Zero(t, f.events.canceled)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.getErr = appointmentRepo.ErrAppointmentNotFound

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 404, UserID: "user-1"})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_AuditFailureDoesNotBlockCancellation(t *testing.T) {
	f := newFixture(t)
	f.cancellations.err = errors.New("audit table is full")

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, int64(7), f.repo.deletedID)
	assert.Equal(t, 1, f.events.canceled)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 0, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{AppointmentID: 7, UserID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

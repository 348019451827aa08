package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	booked        []*domain.Appointment
	upcomingCount int
	createErr     error
	countErr      error

	created     *domain.Appointment
	createCalls int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appt
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) ListByDateRange(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.booked, nil
}

func (f *fakeAppointmentRepo) CountUpcomingByUser(_ context.Context, _ string, _ time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.upcomingCount, nil
}

type fakeBlockedDates struct {
	dates []domain.BlockedDate
	err   error
}

func (f *fakeBlockedDates) ListFrom(_ context.Context, _ time.Time) ([]domain.BlockedDate, error) {
	return f.dates, f.err
}

type fakeProfiles struct {
	err   error
	calls int
	last  *domain.CustomerProfile
}

func (f *fakeProfiles) Upsert(_ context.Context, profile *domain.CustomerProfile) error {
	f.calls++
	f.last = profile
	return f.err
}

type fakeEvents struct {
	created int
}

func (f *fakeEvents) AppointmentCreated(_ context.Context, _ *domain.Appointment) {
	f.created++
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func testPolicy(t *testing.T) domain.BookingPolicy {
	t.Helper()
	policy, err := domain.NewBookingPolicy("Europe/Sarajevo", "08:30", "18:30", 30, 7, "", 3)
	require.NoError(t, err)
	return policy
}

type fixture struct {
	uc       *UseCase
	repo     *fakeAppointmentRepo
	blocked  *fakeBlockedDates
	profiles *fakeProfiles
	events   *fakeEvents
	tx       *fakeTxManager
}

// Понедельник 7 апреля 2025, 12:00 UTC (14:00 по Сараеву)
var testNow = time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     &fakeAppointmentRepo{},
		blocked:  &fakeBlockedDates{},
		profiles: &fakeProfiles{},
		events:   &fakeEvents{},
		tx:       &fakeTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.blocked, f.profiles, f.events, f.tx, testPolicy(t), nopLogger{})
	f.uc.timeProvider = &fixedClock{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:        "user-1",
		CustomerName:  "Amar",
		CustomerPhone: "061123456",
		Service:       domain.ServiceHaircut,
		Date:          time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, domain.ServiceName(domain.ServiceHaircut), resp.ServiceName)
	assert.Equal(t, domain.ServiceDuration(domain.ServiceHaircut), resp.DurationMinutes)

	require.NotNil(t, f.repo.created)
	// Сараево в апреле живёт по UTC+2: 10:00 локального = 08:00 UTC
	assert.Equal(t, time.Date(2025, 4, 8, 8, 0, 0, 0, time.UTC), f.repo.created.StartTime.UTC())

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.events.created)
	assert.Equal(t, 1, f.profiles.calls)
	assert.Equal(t, "Amar", f.profiles.last.Name)
}

func TestExecute_QuotaExceededBeforeAnyWrite(t *testing.T) {
	f := newFixture(t)
	f.repo.upcomingCount = 3

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Zero(t, f.repo.createCalls)
	assert.Zero(t, f.tx.calls)
	assert.Zero(t, f.profiles.calls)
}

func TestExecute_SlotOccupied(t *testing.T) {
	f := newFixture(t)
	// Fade 20 минут с 09:50 по Сараеву перекрывает слот 10:00
	f.repo.booked = []*domain.Appointment{{
		ID:        7,
		Service:   domain.ServiceFade,
		StartTime: time.Date(2025, 4, 8, 7, 50, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.repo.createCalls)
	assert.Zero(t, f.events.created)
}

func TestExecute_UniqueIndexRaceMapsToSlotNotAvailable(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.events.created)
}

func TestExecute_DateOutsideWindow(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Date = time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestExecute_SundayIsClosed(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Date = time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_BlockedDate(t *testing.T) {
	f := newFixture(t)
	f.blocked.dates = []domain.BlockedDate{{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.StartTime = types.TimeString("10:15")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_OutsideBusinessHoursRejected(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.StartTime = types.TimeString("07:30")
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	req = validRequest()
	req.StartTime = types.TimeString("18:30")
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastSlotTodayRejected(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Date = time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	req.StartTime = types.TimeString("09:00")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Service = domain.ServiceType(99)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerName = "   "
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CustomerPhone = ""
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.UserID = ""
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProfileUpsertFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.profiles.err = errors.New("profiles table is on vacation")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 1, f.events.created)
}

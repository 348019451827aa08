package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/ptr"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	booked []*domain.Appointment
	err    error
}

func (f *fakeAppointmentRepo) ListByDateRange(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.booked, f.err
}

type fakeBlockedDates struct {
	dates []domain.BlockedDate
	err   error
}

func (f *fakeBlockedDates) ListFrom(_ context.Context, _ time.Time) ([]domain.BlockedDate, error) {
	return f.dates, f.err
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

// Понедельник 7 апреля 2025, 12:00 UTC (14:00 по Сараеву)
var testNow = time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, repo *fakeAppointmentRepo, blocked *fakeBlockedDates) *UseCase {
	t.Helper()

	policy, err := domain.NewBookingPolicy("Europe/Sarajevo", "08:30", "18:30", 30, 7, "", 3)
	require.NoError(t, err)

	uc := NewUseCase(repo, blocked, policy, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_EmptyDayYieldsFullGrid(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 20)
	assert.Equal(t, types.TimeString("08:30"), resp.Slots[0])
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[19])
}

func TestExecute_BookedAppointmentsRemoveSlots(t *testing.T) {
	repo := &fakeAppointmentRepo{booked: []*domain.Appointment{{
		ID:        1,
		Service:   domain.ServiceFade, // 20 минут
		StartTime: time.Date(2025, 4, 8, 8, 0, 0, 0, time.UTC), // 10:00 по Сараеву
	}}}
	uc := newUseCase(t, repo, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_ServiceFilterDropsTightSlots(t *testing.T) {
	repo := &fakeAppointmentRepo{booked: []*domain.Appointment{{
		ID:        1,
		Service:   domain.ServiceHaircut, // 15 минут, 10:30-10:45 по Сараеву
		StartTime: time.Date(2025, 4, 8, 8, 30, 0, 0, time.UTC),
	}}}
	uc := newUseCase(t, repo, &fakeBlockedDates{})

	req := &Request{
		Date:    time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
		Service: ptr.Ptr(domain.ServiceCutAndShave), // 30 минут
	}
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Перед записью 10:30 свободно только 30 минут с 10:00 - впритык помещается,
	// а вот слот 18:00 для получасовой услуги остаётся последним
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("18:00"))
}

func TestExecute_SundayIsEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OutsideWindowIsEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	for _, date := range []time.Time{
		time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC),  // вчера
		time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), // за окном
	} {
		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots, "date %s", date)
	}
}

func TestExecute_BlockedDateIsEmpty(t *testing.T) {
	blocked := &fakeBlockedDates{dates: []domain.BlockedDate{
		{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)},
	}}
	uc := newUseCase(t, &fakeAppointmentRepo{}, blocked)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodaySkipsPassedSlots(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	// Сейчас 14:00 по Сараеву - первый слот ровно на границе
	assert.Equal(t, types.TimeString("14:00"), resp.Slots[0])
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection lost")}
	uc := newUseCase(t, repo, &fakeBlockedDates{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)})

	assert.ErrorIs(t, err, ErrInternal)
}

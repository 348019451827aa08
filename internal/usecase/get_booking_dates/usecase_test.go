package get_booking_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

type fakeAppointmentRepo struct {
	upcomingCount int
	err           error
}

func (f *fakeAppointmentRepo) CountUpcomingByUser(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.upcomingCount, f.err
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

// Понедельник 7 апреля 2025
var testNow = time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, repo *fakeAppointmentRepo, blocked *fakeBlockedDates) *UseCase {
	t.Helper()

	policy, err := domain.NewBookingPolicy("Europe/Sarajevo", "08:30", "18:30", 30, 7, "", 3)
	require.NoError(t, err)

	uc := NewUseCase(repo, blocked, policy, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_WindowWithoutSundays(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})

	require.NoError(t, err)
	// Окно 7-14 апреля, воскресенье 13 апреля выпадает
	assert.Equal(t, []string{
		"2025-04-07", "2025-04-08", "2025-04-09", "2025-04-10",
		"2025-04-11", "2025-04-12", "2025-04-14",
	}, resp.Dates)
	assert.False(t, resp.QuotaReached)
}

func TestExecute_BlockedDatesExcluded(t *testing.T) {
	blocked := &fakeBlockedDates{dates: []domain.BlockedDate{
		{Date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)},
	}}
	uc := newUseCase(t, &fakeAppointmentRepo{}, blocked)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})

	require.NoError(t, err)
	assert.NotContains(t, resp.Dates, "2025-04-09")
	assert.NotContains(t, resp.Dates, "2025-04-10")
	assert.Contains(t, resp.Dates, "2025-04-08")
}

func TestExecute_QuotaReached(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{upcomingCount: 3}, &fakeBlockedDates{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})

	require.NoError(t, err)
	assert.True(t, resp.QuotaReached)
	// Даты всё равно возвращаются - интерфейс показывает их с предупреждением
	assert.NotEmpty(t, resp.Dates)
}

func TestExecute_MissingUserID(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeBlockedDates{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

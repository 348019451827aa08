package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

// Рабочий день 08:30-18:30 с шагом 30 минут, запрашиваемый заранее
func futureDayBounds() DayBounds {
	return DayBounds{
		Day:           time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
		Now:           time.Date(2025, 4, 5, 12, 0, 0, 0, time.UTC),
		BusinessStart: ts("08:30"),
		BusinessEnd:   ts("18:30"),
		StepMinutes:   30,
	}
}

func TestListOpenSlots_EmptyDay(t *testing.T) {
	slots := ListOpenSlots(futureDayBounds(), nil)

	require.Len(t, slots, 20)
	assert.Equal(t, ts("08:30"), slots[0])
	assert.Equal(t, ts("09:00"), slots[1])
	assert.Equal(t, ts("18:00"), slots[19])
}

func TestListOpenSlots_BookedIntervalConsumesBoundary(t *testing.T) {
	booked := []Interval{{Start: ts("10:00"), End: ts("10:30")}}

	slots := ListOpenSlots(futureDayBounds(), booked)

	assert.NotContains(t, slots, ts("10:00"))
	assert.Contains(t, slots, ts("09:30"))
	assert.Contains(t, slots, ts("10:30"))
	assert.Len(t, slots, 19)
}

func TestListOpenSlots_LongServiceSkipsFollowingBoundary(t *testing.T) {
	// Услуга 45 минут с 10:00 занимает и границу 10:30
	booked := []Interval{{Start: ts("10:00"), End: ts("10:45")}}

	slots := ListOpenSlots(futureDayBounds(), booked)

	assert.NotContains(t, slots, ts("10:00"))
	assert.NotContains(t, slots, ts("10:30"))
	assert.Contains(t, slots, ts("11:00"))
}

func TestListOpenSlots_OverlappingAppointmentsSkippedAsOne(t *testing.T) {
	booked := []Interval{
		{Start: ts("09:00"), End: ts("09:40")},
		{Start: ts("09:30"), End: ts("10:10")},
	}

	slots := ListOpenSlots(futureDayBounds(), booked)

	assert.Contains(t, slots, ts("08:30"))
	assert.NotContains(t, slots, ts("09:00"))
	assert.NotContains(t, slots, ts("09:30"))
	assert.NotContains(t, slots, ts("10:00"))
	assert.Contains(t, slots, ts("10:30"))
}

func TestListOpenSlots_TodayStartsFromNextBoundary(t *testing.T) {
	bounds := futureDayBounds()
	bounds.Day = time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)
	bounds.Now = time.Date(2025, 4, 8, 14, 5, 0, 0, time.UTC)

	slots := ListOpenSlots(bounds, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, ts("14:30"), slots[0])
	assert.Equal(t, ts("18:00"), slots[len(slots)-1])
}

func TestListOpenSlots_TodayOnGridBoundaryKeepsIt(t *testing.T) {
	bounds := futureDayBounds()
	bounds.Day = time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)
	bounds.Now = time.Date(2025, 4, 8, 14, 30, 0, 0, time.UTC)

	slots := ListOpenSlots(bounds, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, ts("14:30"), slots[0])
}

func TestListOpenSlots_LastWindowDayCutoff(t *testing.T) {
	bounds := futureDayBounds()
	bounds.Now = time.Date(2025, 4, 5, 14, 5, 0, 0, time.UTC)
	bounds.LastWindowDay = true

	slots := ListOpenSlots(bounds, nil)

	// Конец дня опускается до текущего времени + шаг, выровненного по сетке
	require.NotEmpty(t, slots)
	assert.Equal(t, ts("08:30"), slots[0])
	assert.Equal(t, ts("14:30"), slots[len(slots)-1])
}

func TestListOpenSlots_AfterClosingReturnsEmpty(t *testing.T) {
	bounds := futureDayBounds()
	bounds.Day = time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)
	bounds.Now = time.Date(2025, 4, 8, 19, 0, 0, 0, time.UTC)

	slots := ListOpenSlots(bounds, nil)

	assert.Empty(t, slots)
}

func TestListOpenSlots_InvalidInputDegradesToEmpty(t *testing.T) {
	bounds := futureDayBounds()
	bounds.StepMinutes = 0
	assert.Empty(t, ListOpenSlots(bounds, nil))

	bounds = futureDayBounds()
	bounds.BusinessStart = ts("garbage")
	assert.Empty(t, ListOpenSlots(bounds, nil))
}

func TestListOpenSlots_IgnoresDegenerateIntervals(t *testing.T) {
	booked := []Interval{
		{Start: ts("10:00"), End: ts("10:00")},
		{Start: ts("bad"), End: ts("11:00")},
	}

	slots := ListOpenSlots(futureDayBounds(), booked)

	assert.Len(t, slots, 20)
}

func TestListOpenSlots_SlotsAreSortedAndUnique(t *testing.T) {
	booked := []Interval{
		{Start: ts("12:10"), End: ts("12:40")},
		{Start: ts("09:00"), End: ts("09:30")},
		{Start: ts("15:00"), End: ts("15:45")},
	}

	slots := ListOpenSlots(futureDayBounds(), booked)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be strictly increasing: %s before %s", slots[i-1], slots[i])
	}
}

func TestIsAvailable_FitsBeforeClosing(t *testing.T) {
	assert.True(t, IsAvailable(ts("18:00"), 30, nil, ts("18:30")))
	assert.False(t, IsAvailable(ts("18:00"), 31, nil, ts("18:30")))
}

func TestIsAvailable_HalfOpenOverlap(t *testing.T) {
	booked := []Interval{{Start: ts("09:10"), End: ts("09:30")}}

	// [09:00, 09:20) пересекает [09:10, 09:30)
	assert.False(t, IsAvailable(ts("09:00"), 20, booked, ts("18:30")))

	// Стык впритык не считается пересечением
	assert.True(t, IsAvailable(ts("09:30"), 30, booked, ts("18:30")))
	assert.True(t, IsAvailable(ts("08:40"), 30, booked, ts("18:30")))
}

func TestIsAvailable_InvalidTimeIsUnavailable(t *testing.T) {
	assert.False(t, IsAvailable(ts("garbage"), 30, nil, ts("18:30")))
	assert.False(t, IsAvailable(ts("09:00"), 30, nil, ts("bad")))
}

func TestFilterForService_RemovesSlotsWhereServiceDoesNotFit(t *testing.T) {
	booked := []Interval{{Start: ts("10:30"), End: ts("11:00")}}
	slots := []types.TimeString{ts("10:00"), ts("11:00"), ts("18:00")}

	// Услуга 45 минут не помещается ни перед записью, ни в конец дня
	filtered := FilterForService(slots, 45, booked, ts("18:30"))

	assert.Equal(t, []types.TimeString{ts("11:00")}, filtered)
}

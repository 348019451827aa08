package domain

import (
	"fmt"
	"time"

	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// BookingPolicy собранные в одном месте бизнес-параметры бронирования.
// Строится из конфигурации один раз при старте сервиса.
type BookingPolicy struct {
	// Location часовой пояс барбершопа; слоты считаются в нём,
	// в БД моменты хранятся в UTC
	Location *time.Location

	BusinessStart   types.TimeString
	BusinessEnd     types.TimeString
	SlotStepMinutes int

	// WindowDays длина окна бронирования в днях от его начала
	WindowDays int

	// MinBookingDate самая ранняя дата, с которой открыто бронирование;
	// нулевое значение - без ограничения
	MinBookingDate time.Time

	MaxUpcomingPerUser int
}

// NewBookingPolicy валидирует и собирает политику бронирования
func NewBookingPolicy(timezone, businessStart, businessEnd string, slotStep, windowDays int, minBookingDate string, maxUpcoming int) (BookingPolicy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return BookingPolicy{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	start, err := types.NewTimeStringFromString(businessStart)
	if err != nil {
		return BookingPolicy{}, fmt.Errorf("parse business_start: %w", err)
	}

	end, err := types.NewTimeStringFromString(businessEnd)
	if err != nil {
		return BookingPolicy{}, fmt.Errorf("parse business_end: %w", err)
	}

	if !start.IsBefore(end) {
		return BookingPolicy{}, fmt.Errorf("business_start %s must be before business_end %s", start, end)
	}

	if slotStep <= 0 {
		return BookingPolicy{}, fmt.Errorf("slot_step_minutes must be positive, got %d", slotStep)
	}

	policy := BookingPolicy{
		Location:           loc,
		BusinessStart:      start,
		BusinessEnd:        end,
		SlotStepMinutes:    slotStep,
		WindowDays:         windowDays,
		MaxUpcomingPerUser: maxUpcoming,
	}

	if minBookingDate != "" {
		min, err := time.ParseInLocation(DateFormat, minBookingDate, loc)
		if err != nil {
			return BookingPolicy{}, fmt.Errorf("parse min_booking_date: %w", err)
		}
		policy.MinBookingDate = min
	}

	return policy, nil
}

// Window вычисляет окно бронирования для текущего момента
func (p BookingPolicy) Window(now time.Time) BookingWindow {
	local := now.In(p.Location)
	minDate := p.MinBookingDate
	if minDate.IsZero() {
		minDate = local
	}
	return NewBookingWindow(local, minDate, p.WindowDays)
}

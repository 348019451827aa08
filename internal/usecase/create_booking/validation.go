package create_booking

import (
	"fmt"
	"strings"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}
	if !domain.KnownService(req.Service) {
		return fmt.Errorf("%w: service %d", ErrUnknownService, req.Service)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	return nil
}

package create_booking

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	createBooking "github.com/frizerhub/Barber-BookingService/internal/usecase/create_booking"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Service      int    `json:"service"`
	Date         string `json:"date"` // "2025-04-12"
	Time         string `json:"time"` // "10:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	CustomerName    string `json:"customerName"`
	PhoneNumber     string `json:"phoneNumber"`
	Service         int    `json:"service"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.PhoneNumber,
		Service:       domain.ServiceType(r.Service),
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		PhoneNumber:     resp.CustomerPhone,
		Service:         int(resp.Service),
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

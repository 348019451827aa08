package cancel_booking

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID int64  // ID отменяемой записи
	UserID        string // ID пользователя, выполняющего отмену
	IsAdmin       bool   // Признак администратора
}

// Response модель ответа с отменённой записью
type Response struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Service       domain.ServiceType
	ServiceName   string
	Date          time.Time
	StartTime     types.TimeString
}

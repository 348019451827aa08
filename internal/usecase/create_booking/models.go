package create_booking

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        string             // ID пользователя (из заголовка авторизации)
	CustomerName  string             // Имя клиента
	CustomerPhone string             // Телефон клиента
	Service       domain.ServiceType // Код услуги
	Date          time.Time          // Дата записи (без времени)
	StartTime     types.TimeString   // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Service       domain.ServiceType
	Date          time.Time
	StartTime     types.TimeString

	// Денормализованные данные
	ServiceName     string // Название услуги
	DurationMinutes int    // Длительность в минутах

	CreatedAt time.Time
	UpdatedAt time.Time
}

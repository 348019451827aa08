package get_available_slots

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты

	// Service необязательный фильтр: оставить только слоты, в которые
	// помещается услуга указанной длительности
	Service *domain.ServiceType
}

// Response список свободных времён начала в порядке возрастания
type Response struct {
	Date  time.Time
	Slots []types.TimeString
}

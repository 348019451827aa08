package get_booking_dates

import (
	"errors"
	"net/http"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	getDates "github.com/frizerhub/Barber-BookingService/internal/usecase/get_booking_dates"
)

const msgInvalidRequest = "neispravan zahtjev"

type Handler struct {
	useCase GetBookingDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates        []string `json:"dates"`
	QuotaReached bool     `json:"quotaReached"`
}

// Handle GET /api/v1/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getDates.Request{UserID: userID})
	if err != nil {
		if errors.Is(err, getDates.ErrInvalidInput) {
			h.logger.Warn("GET /dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("GET /dates - Failed to list dates: user=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DatesResponse{
		Dates:        result.Dates,
		QuotaReached: result.QuotaReached,
	})
}

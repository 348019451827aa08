package create_booking

import (
	"errors"
	"net/http"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	createBooking "github.com/frizerhub/Barber-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "neispravan sadržaj zahtjeva"
	msgInvalidDateTime    = "neispravan datum ili vrijeme, očekuje se YYYY-MM-DD i HH:MM"
	msgUnknownService     = "nepoznata usluga"
	msgSlotNotAvailable   = "odabrani termin više nije dostupan"
	msgOutsideWindow      = "odabrani datum nije otvoren za rezervacije"
	msgClosedDay          = "salon ne radi na odabrani datum"
	msgQuotaExceeded      = "dostigli ste maksimalan broj aktivnih termina"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user=%s, date=%s, time=%s", userID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrQuotaExceeded):
			h.logger.Warn("POST /appointments - Booking limit reached: user=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgQuotaExceeded)

		case errors.Is(err, createBooking.ErrOutsideWindow),
			errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /appointments - Date not bookable: user=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createBooking.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: user=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /appointments - Unknown service: user=%s, service=%d", userID, req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

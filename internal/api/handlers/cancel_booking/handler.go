package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	cancelBooking "github.com/frizerhub/Barber-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidID           = "neispravan identifikator termina"
	msgAppointmentNotFound = "termin nije pronađen"
	msgAccessDenied        = "možete otkazati samo vlastiti termin"
)

type Handler struct {
	useCase      CancelBookingUseCase
	adminUserIDs []string
	logger       Logger
}

func NewHandler(useCase CancelBookingUseCase, adminUserIDs []string, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		adminUserIDs: adminUserIDs,
		logger:       logger,
	}
}

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /appointments/{id} - Invalid id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	userID := middleware.UserID(r.Context())
	req := &cancelBooking.Request{
		AppointmentID: id,
		UserID:        userID,
		IsAdmin:       middleware.IsAdmin(h.adminUserIDs, userID),
	}

	if _, err := h.useCase.Execute(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Not found: id=%d, user=%s", id, userID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel: id=%d, user=%s, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment canceled: id=%d, user=%s", id, userID)
	handlers.RespondNoContent(w)
}

package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	"github.com/frizerhub/Barber-BookingService/internal/service/appointments"
)

const (
	msgInvalidID = "neispravan identifikator termina"
	msgNotFound  = "termin nije pronađen"
	msgForbidden = "pristup odbijen"
)

type Handler struct {
	service      AppointmentService
	adminUserIDs []string
	logger       Logger
}

func NewHandler(service AppointmentService, adminUserIDs []string, logger Logger) *Handler {
	return &Handler{
		service:      service,
		adminUserIDs: adminUserIDs,
		logger:       logger,
	}
}

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	userID := middleware.UserID(r.Context())
	isAdmin := middleware.IsAdmin(h.adminUserIDs, userID)

	appt, err := h.service.GetByID(r.Context(), id, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appt)
}

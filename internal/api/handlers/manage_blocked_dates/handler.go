package manage_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	"github.com/frizerhub/Barber-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "neispravan sadržaj zahtjeva"
	msgInvalidDate        = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgDateNotFound       = "datum nije blokiran"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BlockDateRequest HTTP request model
type BlockDateRequest struct {
	Date string `json:"date"` // "2025-04-12"
}

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	Dates []string `json:"dates"`
}

// HandleList GET /api/v1/admin/blocked-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.ListBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-dates - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BlockedDatesResponse{Dates: dates})
}

// HandleBlock POST /api/v1/admin/blocked-dates
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.BlockDate(r.Context(), req.Date); err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("POST /admin/blocked-dates - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /admin/blocked-dates - Failed to block date=%s: %v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Date blocked: date=%s, admin=%s", req.Date, middleware.UserID(r.Context()))
	handlers.RespondNoContent(w)
}

// HandleUnblock DELETE /api/v1/admin/blocked-dates/{date}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.UnblockDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrDateNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Not blocked: date=%s", date)
			handlers.RespondNotFound(w, msgDateNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{date} - Failed to unblock date=%s: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{date} - Date unblocked: date=%s, admin=%s", date, middleware.UserID(r.Context()))
	handlers.RespondNoContent(w)
}

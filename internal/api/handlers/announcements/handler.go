package announcements

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	announcementSvc "github.com/frizerhub/Barber-BookingService/internal/service/announcements"
)

const (
	msgInvalidRequestBody = "neispravan sadržaj zahtjeva"
	msgInvalidPeriod      = "neispravan period objave, očekuje se RFC 3339"
	msgInvalidID          = "neispravan identifikator objave"
	msgNotFound           = "objava nije pronađena"
)

type Handler struct {
	service AnnouncementService
	logger  Logger
}

func NewHandler(service AnnouncementService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateAnnouncementRequest HTTP request model
type CreateAnnouncementRequest struct {
	Message  string `json:"message"`
	StartsAt string `json:"startsAt"` // RFC 3339
	EndsAt   string `json:"endsAt"`   // RFC 3339
}

// HandleList GET /api/v1/announcements
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /announcements - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleCreate POST /api/v1/admin/announcements
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateAnnouncementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/announcements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		h.logger.Warn("POST /admin/announcements - Invalid startsAt: %q", req.StartsAt)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		h.logger.Warn("POST /admin/announcements - Invalid endsAt: %q", req.EndsAt)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	created, err := h.service.Create(r.Context(), req.Message, startsAt, endsAt)
	if err != nil {
		if errors.Is(err, announcementSvc.ErrInvalidInput) {
			h.logger.Warn("POST /admin/announcements - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /admin/announcements - Failed to create: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/announcements - Announcement created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleDelete DELETE /api/v1/admin/announcements/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/announcements/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, announcementSvc.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/announcements/{id} - Invalid id: %d", id)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, announcementSvc.ErrAnnouncementNotFound):
			h.logger.Warn("DELETE /admin/announcements/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/announcements/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/announcements/{id} - Announcement deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

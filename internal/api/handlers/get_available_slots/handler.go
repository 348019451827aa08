package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
	"github.com/frizerhub/Barber-BookingService/internal/domain"
	getSlots "github.com/frizerhub/Barber-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate    = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgInvalidService = "neispravan kod usluge"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&service=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %q", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getSlots.Request{Date: date}
	if raw := r.URL.Query().Get("service"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid service: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidService)
			return
		}
		service := domain.ServiceType(code)
		req.Service = &service
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getSlots.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /slots - Failed to list slots: date=%s, error=%v", req.Date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	resp := SlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: make([]string, 0, len(result.Slots)),
	}
	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, s.String())
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

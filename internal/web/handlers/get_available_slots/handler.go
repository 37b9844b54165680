package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/schwarztim/CSC425/internal/api/handlers"
	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

const (
	msgMissingDate = "Date parameter is required"
	msgInvalidDate = "Invalid date format. Use YYYY-MM-DD."
)

type Handler struct {
	client BookingServiceClient
	logger Logger
}

func NewHandler(client BookingServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /available-slots?date=YYYY-MM-DD
// Формат даты проверяется до обращения к backend, результат backend
// ретранслируется без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.client.GetAvailableSlots(r.Context(), date)
	if err != nil {
		var apiErr *bookingservice.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("GET /available-slots - Backend rejected request: %v", apiErr)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.Message)
			return
		}
		h.logger.Error("GET /available-slots - Backend request failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-slots - Fetched %d slots for %s", len(slots), date)
	handlers.RespondJSON(w, http.StatusOK, slots)
}

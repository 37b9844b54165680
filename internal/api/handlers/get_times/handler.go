package get_times

import (
	"net/http"
	"time"

	"github.com/schwarztim/CSC425/internal/api/handlers"
	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/pkg/ptr"
)

const msgInvalidDate = "Invalid date format. Use YYYY-MM-DD."

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /times
// Query params: date (optional, YYYY-MM-DD) - ограничивает выдачу одной датой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /times - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = ptr.Ptr(parsed)
	}

	slots, err := h.service.ListBookedSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /times - Failed to fetch booked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	times := make([]string, len(slots))
	for i, slot := range slots {
		times[i] = slot.Format(domain.TimeSlotFormat)
	}

	h.logger.Info("GET /times - Fetched %d booked slots", len(times))
	handlers.RespondJSON(w, http.StatusOK, times)
}

package get_times

import (
	"errors"
	"net/http"

	"github.com/schwarztim/CSC425/internal/api/handlers"
	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

const msgMissingDate = "Date parameter is required"

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

// Handle GET /times?date=YYYY-MM-DD
// Проксирует запрос в backend, ответ backend ретранслируется без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	times, err := h.client.GetTimes(r.Context(), date)
	if err != nil {
		var apiErr *bookingservice.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("GET /times - Backend rejected request: %v", apiErr)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.Message)
			return
		}
		h.logger.Error("GET /times - Backend request failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /times - Fetched %d booked slots for %s", len(times), date)
	handlers.RespondJSON(w, http.StatusOK, times)
}

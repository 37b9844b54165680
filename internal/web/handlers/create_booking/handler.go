package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/schwarztim/CSC425/internal/api/handlers"
	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

const (
	msgInvalidRequestBody = "Invalid JSON body."
	msgMissingFields      = "Time slot, date, name, and phone number are required."
	msgInvalidTime        = "Invalid time format. Expected HH:MM."
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

// Handle POST /book
// Заполненность полей и формат времени проверяются до пересылки,
// решение о допустимости слота остается за backend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req bookingservice.BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Time == "" || req.Date == "" || req.Name == "" || req.PhoneNumber == "" {
		h.logger.Warn("POST /book - Missing required fields")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if _, err := time.Parse(domain.TimeFormat, req.Time); err != nil {
		h.logger.Warn("POST /book - Invalid time format: %q", req.Time)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	resp, err := h.client.CreateBooking(r.Context(), &req)
	if err != nil {
		var apiErr *bookingservice.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("POST /book - Backend rejected booking: %v", apiErr)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.Message)
			return
		}
		h.logger.Error("POST /book - Backend request failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /book - Booking created: slot=%s", resp.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/schwarztim/CSC425/internal/api/handlers"
	createBooking "github.com/schwarztim/CSC425/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid JSON body."
	msgMissingFields      = "Time slot, date, name, and phone number are required."
	msgInvalidFormat      = "Invalid date or time format. Expected YYYY-MM-DD and HH:MM."
	msgOutsideHours       = "Time slot is outside business hours."
	msgClosedWeekday      = "Bookings are accepted Tuesday through Saturday only."
	msgSlotTaken          = "Time slot already booked"
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

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingField):
			h.logger.Warn("POST /book - Missing field: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidFormat):
			h.logger.Warn("POST /book - Invalid format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /book - Outside business hours: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrClosedWeekday):
			h.logger.Warn("POST /book - Closed weekday: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosedWeekday)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /book - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("POST /book - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: slot=%s", result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

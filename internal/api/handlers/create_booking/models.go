package create_booking

import (
	"github.com/schwarztim/CSC425/internal/domain"
	createBooking "github.com/schwarztim/CSC425/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Time        string `json:"time"`         // "14:00"
	Date        string `json:"date"`         // "2024-06-04"
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message  string `json:"message"`
	TimeSlot string `json:"time_slot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:        r.Date,
		Time:        r.Time,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Message:  "Time slot booked successfully",
		TimeSlot: resp.TimeSlot.Format(domain.TimeSlotFormat),
	}
}

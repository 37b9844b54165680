package create_booking

import (
	"context"

	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.BookRequest) (*bookingservice.BookResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

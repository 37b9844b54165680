package get_available_slots

import (
	"context"

	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

type BookingServiceClient interface {
	GetAvailableSlots(ctx context.Context, date string) ([]bookingservice.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

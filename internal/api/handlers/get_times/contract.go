package get_times

import (
	"context"
	"time"
)

type BookingsService interface {
	ListBookedSlots(ctx context.Context, date *time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

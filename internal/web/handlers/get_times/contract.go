package get_times

import "context"

type BookingServiceClient interface {
	GetTimes(ctx context.Context, date string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

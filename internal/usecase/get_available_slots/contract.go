package get_available_slots

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListTimeSlots получает занятые слоты, опционально ограниченные датой
	ListTimeSlots(ctx context.Context, date *time.Time) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

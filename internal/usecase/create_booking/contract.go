package create_booking

import (
	"context"
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ExistsAtSlot(ctx context.Context, timeSlot time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

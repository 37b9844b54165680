package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
)

// Service сервис для чтения занятых слотов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListBookedSlots возвращает значения time_slot всех бронирований
// Если date задан, результат ограничивается указанной датой
// Результат не пагинируется
func (s *Service) ListBookedSlots(ctx context.Context, date *time.Time) ([]time.Time, error) {
	if date != nil {
		s.logger.Info("ListBookedSlots: date=%s", date.Format(domain.DateFormat))
	} else {
		s.logger.Info("ListBookedSlots: all dates")
	}

	slots, err := s.bookingRepo.ListTimeSlots(ctx, date)
	if err != nil {
		s.logger.Error("ListBookedSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookedSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookedSlots: fetched %d booked slots", len(slots))
	return slots, nil
}

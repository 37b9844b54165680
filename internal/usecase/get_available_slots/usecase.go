package get_available_slots

import (
	"context"
	"fmt"

	"github.com/schwarztim/CSC425/internal/domain"
)

// UseCase use case для получения слотов с их занятостью на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	allSlots := generateTimeSlots()

	bookedSlots, err := uc.bookingRepo.ListTimeSlots(ctx, &req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	slots := markBookedSlots(allSlots, bookedSlots)

	uc.logger.Info("GetAvailableSlots: %d slots for %s, %d booked",
		len(slots), req.Date.Format(domain.DateFormat), len(bookedSlots))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

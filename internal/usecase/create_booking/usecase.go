package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/schwarztim/CSC425/internal/domain"
	bookingRepo "github.com/schwarztim/CSC425/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка выполняются в сериализуемой транзакции;
// фактическую гарантию уникальности слота дает уникальный индекс в БД,
// предварительная проверка - только ранний выход
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, name=%s", req.Date, req.Time, req.Name)

	// 1. Проверка обязательных полей - до какого-либо обращения к хранилищу
	if err := validateRequired(req); err != nil {
		uc.logger.Warn("CreateBooking: missing field: %v", err)
		return nil, err
	}

	// 2. Парсинг даты и времени
	date, startTime, err := parseSlot(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: parse failed: %v", err)
		return nil, err
	}

	// 3. Валидация бизнес-правил слота
	if err := validateSlot(date, startTime); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	timeSlot, err := domain.NewTimeSlot(date, startTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build time slot: %v", err)
		return nil, fmt.Errorf("%w: failed to build time slot: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exists, err := uc.bookingRepo.ExistsAtSlot(txCtx, timeSlot)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: slot %s already booked", timeSlot.Format(domain.TimeSlotFormat))
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			TimeSlot:    timeSlot,
			Name:        req.Name,
			PhoneNumber: req.PhoneNumber,
		}

		created, err := uc.bookingRepo.Insert(txCtx, booking)
		if err != nil {
			// Конкурентная вставка могла обогнать проверку - уникальный
			// индекс сворачивает оба пути в один исход
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken by concurrent insert", timeSlot.Format(domain.TimeSlotFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to insert booking: %v", err)
			return fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, slot=%s",
		result.ID, result.TimeSlot.Format(domain.TimeSlotFormat))

	return &Response{
		ID:          result.ID,
		TimeSlot:    result.TimeSlot,
		Name:        result.Name,
		PhoneNumber: result.PhoneNumber,
		CreatedAt:   result.CreatedAt,
	}, nil
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/pkg/types"
)

// validateRequired проверяет заполненность обязательных полей
// Ошибка называет первое незаполненное поле
func validateRequired(req *Request) error {
	if req.Time == "" {
		return fmt.Errorf("%w: time", ErrMissingField)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone_number", ErrMissingField)
	}
	return nil
}

// parseSlot парсит дату и время запроса в значение time_slot
func parseSlot(req *Request) (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, req.Date)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, req.Time)
	}

	return date, startTime, nil
}

// validateSlot проверяет слот против бизнес-правил:
// рабочее окно [10:00, 18:00), получасовая сетка, разрешенные дни недели
func validateSlot(date time.Time, startTime types.TimeString) error {
	if startTime.IsBefore(domain.OpenTime) || !startTime.IsBefore(domain.CloseTime) {
		return fmt.Errorf("%w: %s is outside [%s, %s)",
			ErrOutsideBusinessHours, startTime, domain.OpenTime, domain.CloseTime)
	}

	if !isOnSlotGrid(startTime) {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute grid",
			ErrOutsideBusinessHours, startTime, domain.SlotDurationMinutes)
	}

	if !domain.IsAllowedWeekday(date.Weekday()) {
		return fmt.Errorf("%w: %s", ErrClosedWeekday, date.Weekday())
	}

	return nil
}

// isOnSlotGrid проверяет выравнивание времени по сетке слотов
func isOnSlotGrid(startTime types.TimeString) bool {
	slot := domain.OpenTime
	for !slot.IsAfter(domain.LastSlotStart) {
		if slot == startTime {
			return true
		}
		next, err := slot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return false
		}
		slot = next
	}
	return false
}

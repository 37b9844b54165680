package get_available_slots

import (
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/pkg/types"
)

// generateTimeSlots генерирует все слоты рабочего дня:
// от открытия до последнего слота включительно с фиксированным шагом
// Для окна 10:00-17:30 с шагом 30 минут получается ровно 16 слотов
func generateTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, 16)
	current := domain.OpenTime

	for !current.IsAfter(domain.LastSlotStart) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// markBookedSlots аннотирует слоты признаком занятости
// Слот занят, если его время присутствует среди занятых time_slot этой даты
func markBookedSlots(slots []types.TimeString, bookedSlots []time.Time) []domain.Slot {
	booked := make(map[types.TimeString]bool, len(bookedSlots))
	for _, ts := range bookedSlots {
		booked[types.NewTimeString(ts)] = true
	}

	result := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		result[i] = domain.Slot{
			Time:   slot,
			Booked: booked[slot],
		}
	}

	return result
}

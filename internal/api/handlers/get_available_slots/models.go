package get_available_slots

import (
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
	getAvailableSlots "github.com/schwarztim/CSC425/internal/usecase/get_available_slots"
)

// SlotResponse модель слота в HTTP ответе
type SlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// ToUseCaseRequest создает запрос use case из query параметра даты
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Исходный API отдает плоский массив слотов
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:   slot.Time.String(),
			Booked: slot.Booked,
		}
	}
	return slots
}

package get_available_slots

import (
	"time"

	"github.com/schwarztim/CSC425/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов и их занятостью
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}

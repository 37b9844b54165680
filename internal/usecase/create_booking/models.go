package create_booking

import "time"

// Request модель запроса на создание бронирования
// Дата и время передаются строками: их формат - часть валидируемого контракта
type Request struct {
	Date        string // дата слота, "YYYY-MM-DD"
	Time        string // время начала слота, "HH:MM"
	Name        string
	PhoneNumber string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	TimeSlot    time.Time
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}

package bookingservice

// Slot слот из ответа backend
type Slot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// BookRequest запрос на бронирование, пересылаемый в backend
type BookRequest struct {
	Time        string `json:"time"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookResponse ответ backend на успешное бронирование
type BookResponse struct {
	Message  string `json:"message"`
	TimeSlot string `json:"time_slot"`
}

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Error string `json:"error"`
}

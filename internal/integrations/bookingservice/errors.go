package bookingservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrUnavailable возвращается, когда backend недоступен
	ErrUnavailable = errors.New("bookingservice client: backend unavailable")
)

// APIError бизнес-отказ backend (4xx), который frontend ретранслирует
// клиенту без изменения статуса и сообщения
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bookingservice client: backend rejected request: status=%d, message=%s", e.StatusCode, e.Message)
}

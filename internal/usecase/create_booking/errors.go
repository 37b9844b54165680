package create_booking

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	// Оборачивается с именем нарушенного поля
	ErrMissingField = errors.New("create_booking: required field is missing")

	// ErrInvalidFormat возвращается при некорректном формате даты или времени
	ErrInvalidFormat = errors.New("create_booking: invalid date or time format")

	// ErrOutsideBusinessHours возвращается, когда время вне рабочего окна
	// или не выровнено по получасовой сетке
	ErrOutsideBusinessHours = errors.New("create_booking: time is outside business hours")

	// ErrClosedWeekday возвращается, когда день недели вне разрешенного набора
	ErrClosedWeekday = errors.New("create_booking: bookings are not accepted on this weekday")

	// ErrSlotTaken возвращается, когда слот уже занят
	// Единый исход независимо от того, какой слой обнаружил дубликат
	ErrSlotTaken = errors.New("create_booking: time slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

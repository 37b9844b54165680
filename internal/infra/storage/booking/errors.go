package booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	// Срабатывает и на предварительной проверке, и на нарушении уникального индекса
	ErrSlotTaken = errors.New("booking.repository: time slot is already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, если бронирование не существует
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, если активное бронирование уже занимает (клинер, дата, блок)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery возвращается, если SQL запрос не удалось построить
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается, если строку результата не удалось прочитать
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

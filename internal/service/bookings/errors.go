package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, если бронирование не существует
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, если вызывающий не клинер из бронирования
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotCancel возвращается, если бронирование уже отменено
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInvalidInput возвращается для некорректного запроса
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = errors.New("bookings service: internal error")
)

package create_booking

import "errors"

var (
	// ErrCleanerNotFound возвращается, если клинер не существует
	ErrCleanerNotFound = errors.New("create_booking: cleaner not found")

	// ErrNotPriced возвращается, если у клинера нет тарифа для такого дома
	ErrNotPriced = errors.New("create_booking: no rate defined for this configuration")

	// ErrSlotNotAvailable возвращается, если блок занят, закрыт или прошла отсечка
	ErrSlotNotAvailable = errors.New("create_booking: time slot no longer available")

	// ErrInvalidInput возвращается для некорректных запросов
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = errors.New("create_booking: internal error")
)

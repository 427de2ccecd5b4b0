package get_availability

import "errors"

var (
	// ErrCleanerNotFound возвращается, если клинер не существует
	ErrCleanerNotFound = errors.New("get_availability: cleaner not found")

	// ErrInvalidInput возвращается при отсутствии id клинера или некорректной дате
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = errors.New("get_availability: internal error")
)

package cleaners

import "errors"

var (
	// ErrCleanerNotFound клинера нет ни в хранилище, ни у identity провайдера
	ErrCleanerNotFound = errors.New("cleaners: cleaner not found")

	// ErrAccessDenied вызывающий не владелец профиля
	ErrAccessDenied = errors.New("cleaners: access denied")

	// ErrInvalidInput некорректное обновление или запрос
	ErrInvalidInput = errors.New("cleaners: invalid input data")

	// ErrInternal сбой хранилища или провайдера
	ErrInternal = errors.New("cleaners service: internal error")
)

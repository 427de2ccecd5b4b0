package identity

import "errors"

var (
	// ErrUserNotFound возвращается, если у identity провайдера нет такого пользователя
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrNotConfigured возвращается, если URL identity провайдера не задан
	ErrNotConfigured = errors.New("identity: provider is not configured")

	// ErrInvalidToken возвращается для отсутствующего, битого, истекшего или чужого bearer токена
	ErrInvalidToken = errors.New("identity: invalid bearer token")

	// ErrInternal возвращается при сетевых сбоях
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается, если провайдер ответил неожиданными данными
	ErrInvalidResponse = errors.New("identity client: invalid response")
)

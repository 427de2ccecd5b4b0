package get_quote

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// CleanerRepository хранилище клинеров
type CleanerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)
}

// Logger printf-логгер
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// BookingRepository хранилище бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CleanerRepository хранилище клинеров
type CleanerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)
}

// TimeProvider источник текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// Logger printf-логгер
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

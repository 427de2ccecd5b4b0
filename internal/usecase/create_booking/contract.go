package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// BookingRepository хранилище бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CleanerRepository хранилище клинеров
type CleanerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)
}

// TransactionManager выполняет fn в транзакции, переданной через ctx
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики результатов бронирования
type Metrics interface {
	BookingCreated()
	BookingConflict()
}

type noopMetrics struct{}

func (noopMetrics) BookingCreated()  {}
func (noopMetrics) BookingConflict() {}

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

// RealTimeProvider реальное время в настроенной таймзоне бронирований
type RealTimeProvider struct {
	Location *time.Location
}

func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}

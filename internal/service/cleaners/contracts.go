package cleaners

import (
	"context"
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/internal/integrations/identity"
)

// CleanerRepository хранилище клинеров
type CleanerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)
	List(ctx context.Context) ([]*domain.Cleaner, error)
	Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error)
	Update(ctx context.Context, cleaner *domain.Cleaner) error
}

// IdentityClient админский поиск аккаунтов identity провайдера
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*identity.User, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger printf-логгер
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

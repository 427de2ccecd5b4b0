package get_bookings

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListByCleaner(ctx context.Context, cleanerID string) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

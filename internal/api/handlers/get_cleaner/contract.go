package get_cleaner

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
)

type CleanerService interface {
	Get(ctx context.Context, id string) (*models.CleanerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_cleaners

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
)

type CleanerService interface {
	List(ctx context.Context) ([]models.CleanerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

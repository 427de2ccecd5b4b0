package get_open_days

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
)

type CleanerService interface {
	ListOpenDays(ctx context.Context, req *models.ListOpenDaysRequest) ([]models.OpenDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

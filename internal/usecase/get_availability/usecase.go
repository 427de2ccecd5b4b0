package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CleanClick-BookingService/internal/availability"
	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
)

// UseCase актуальная доступность для формы бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	cleanerRepo  CleanerRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	cleanerRepo CleanerRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cleanerRepo:  cleanerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute вычисляет оба блока запрошенной даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: cleaner=%s, date=%s", req.CleanerID, req.Date)

	// 1. Валидация входных данных
	cleanerID := strings.TrimSpace(req.CleanerID)
	if cleanerID == "" || req.Date == "" {
		uc.logger.Warn("GetAvailability: cleanerId and date are required")
		return nil, fmt.Errorf("%w: cleanerId and date are required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем клинера
	cleaner, err := uc.cleanerRepo.GetByID(ctx, cleanerID)
	if err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			uc.logger.Warn("GetAvailability: cleaner id=%s not found", cleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("GetAvailability: failed to get cleaner id=%s: %v", cleanerID, err)
		return nil, fmt.Errorf("%w: failed to get cleaner: %v", ErrInternal, err)
	}

	// 3. Активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		CleanerID: cleaner.ID,
		Date:      &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем доступность
	result := availability.Resolve(cleaner, date, bookings, uc.timeProvider.Now())

	return &Response{
		Morning:   result.Morning,
		Afternoon: result.Afternoon,
	}, nil
}

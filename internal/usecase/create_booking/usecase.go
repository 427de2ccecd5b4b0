package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CleanClick-BookingService/internal/availability"
	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/internal/pricing"
)

// UseCase создает бронирования; единственный путь записи бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	cleanerRepo  CleanerRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	cleanerRepo CleanerRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		cleanerRepo:  cleanerRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute валидирует, считает цену и сохраняет бронирование.
// Повторная проверка доступности и вставка выполняются в одной транзакции, а
// сама вставка выполняется только при свободном слоте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: cleaner=%s, date=%s, block=%s, bedrooms=%d, bathrooms=%d, frequency=%s",
		req.CleanerID, req.Date, req.TimeBlock, req.Bedrooms, req.Bathrooms, req.Frequency)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	block := domain.TimeBlock(req.TimeBlock)
	service := domain.ServiceType(req.ServiceType).OrDefault()
	frequency := domain.Frequency(req.Frequency)

	// 2. Получаем клинера
	cleaner, err := uc.cleanerRepo.GetByID(ctx, req.CleanerID)
	if err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			uc.logger.Warn("CreateBooking: cleaner id=%s not found", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get cleaner id=%s: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to get cleaner: %v", ErrInternal, err)
	}

	// 3. Проверяем размер дома
	if err := validateRooms(req.Bedrooms, req.Bathrooms); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Считаем цену
	totalPrice, err := pricing.Price(cleaner, req.Bedrooms, req.Bathrooms, frequency, service)
	if err != nil {
		if errors.Is(err, pricing.ErrNotPriced) {
			uc.logger.Warn("CreateBooking: cleaner id=%s has no rate for %d-%d", cleaner.ID, req.Bedrooms, req.Bathrooms)
			return nil, fmt.Errorf("%w: %v", ErrNotPriced, err)
		}
		uc.logger.Error("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}

	// 5. Дата не в прошлом
	now := uc.timeProvider.Now()
	if date.Before(domain.DateOf(now)) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date)
		return nil, fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, date)
	}

	window, _ := block.Window()

	var result *domain.Booking

	// 6. Атомарно перепроверяем и вставляем
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования на дату, заблокированные до коммита
		existing, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingsFilter{
			CleanerID: cleaner.ID,
			Date:      &date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Актуальная доступность на момент записи
		if !availability.IsBlockAvailable(cleaner, date, block, existing, now) {
			uc.logger.Warn("CreateBooking: block %s on %s is not available for cleaner=%s", block, date, cleaner.ID)
			return ErrSlotNotAvailable
		}

		// 6.3. Условная вставка
		booking := &domain.Booking{
			CleanerID:       cleaner.ID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			HasPets:         req.HasPets,
			Bedrooms:        req.Bedrooms,
			Bathrooms:       req.Bathrooms,
			ServiceType:     service,
			Frequency:       frequency,
			Date:            date,
			TimeBlock:       block,
			StartTime:       window.Start.String(),
			EndTime:         window.End.String(),
			TotalPrice:      totalPrice,
			Status:          domain.StatusConfirmed,
			CreatedAt:       now.UTC(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost the race for %s %s, cleaner=%s", date, block, cleaner.ID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.BookingConflict()
		}
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		CleanerID:       b.CleanerID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		HasPets:         b.HasPets,
		Bedrooms:        b.Bedrooms,
		Bathrooms:       b.Bathrooms,
		ServiceType:     string(b.ServiceType),
		Frequency:       string(b.Frequency),
		Date:            b.Date.String(),
		TimeBlock:       string(b.TimeBlock),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

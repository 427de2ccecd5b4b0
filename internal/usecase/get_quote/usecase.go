package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/internal/pricing"
)

// UseCase серверный расчет цены
type UseCase struct {
	cleanerRepo CleanerRepository
	logger      Logger
}

func NewUseCase(cleanerRepo CleanerRepository, logger Logger) *UseCase {
	return &UseCase{
		cleanerRepo: cleanerRepo,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: cleaner=%s, bedrooms=%d, bathrooms=%d, frequency=%s, service=%s",
		req.CleanerID, req.Bedrooms, req.Bathrooms, req.Frequency, req.ServiceType)

	// 1. Проверяем перечисления
	frequency := domain.Frequency(req.Frequency)
	if frequency == "" {
		frequency = domain.FrequencyOneTime
	}
	service := domain.ServiceType(req.ServiceType).OrDefault()

	if req.CleanerID == "" || !frequency.IsValid() || !service.IsValid() {
		uc.logger.Warn("GetQuote: invalid request %+v", *req)
		return nil, fmt.Errorf("%w: cleanerId, frequency or serviceType is invalid", ErrInvalidInput)
	}

	// 2. Получаем клинера
	cleaner, err := uc.cleanerRepo.GetByID(ctx, req.CleanerID)
	if err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			uc.logger.Warn("GetQuote: cleaner id=%s not found", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("GetQuote: failed to get cleaner id=%s: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to get cleaner: %v", ErrInternal, err)
	}

	// 3. Проверяем размер дома
	if req.Bedrooms < domain.MinRooms || req.Bedrooms > domain.MaxRooms ||
		req.Bathrooms < domain.MinRooms || req.Bathrooms > domain.MaxRooms {
		uc.logger.Warn("GetQuote: rooms out of range %d-%d", req.Bedrooms, req.Bathrooms)
		return nil, fmt.Errorf("%w: bedrooms and bathrooms must be between %d and %d", ErrInvalidInput, domain.MinRooms, domain.MaxRooms)
	}

	// 4. Считаем цену
	quote, err := pricing.Compute(cleaner, req.Bedrooms, req.Bathrooms, frequency, service)
	if err != nil {
		if errors.Is(err, pricing.ErrNotPriced) {
			uc.logger.Warn("GetQuote: cleaner id=%s has no rate for %d-%d", cleaner.ID, req.Bedrooms, req.Bathrooms)
			return nil, fmt.Errorf("%w: %v", ErrNotPriced, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		Subtotal:        quote.Subtotal,
		DiscountPercent: quote.DiscountPercent,
		TotalPrice:      quote.Total,
	}, nil
}

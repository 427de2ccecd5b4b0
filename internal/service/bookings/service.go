package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CleanClick-BookingService/internal/service/bookings/models"
)

// Service чтение и отмена бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListByCleaner все бронирования клинера, включая отмененные, по дате
func (s *Service) ListByCleaner(ctx context.Context, cleanerID string) ([]models.BookingResponse, error) {
	s.logger.Info("ListByCleaner: fetching bookings for cleaner=%s", cleanerID)

	if cleanerID == "" {
		s.logger.Warn("ListByCleaner: cleanerId is empty")
		return nil, fmt.Errorf("%w: cleanerId is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		CleanerID:        cleanerID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("ListByCleaner: repository error for cleaner=%s: %v", cleanerID, err)
		return nil, fmt.Errorf("%w: ListByCleaner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCleaner: successfully fetched %d bookings for cleaner=%s", len(bookings), cleanerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel переводит бронирование в cancelled и освобождает слот.
// Отменить может только клинер из бронирования.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by caller=%s", req.BookingID, req.CallerID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// 2. Проверяем владельца
		if req.CallerID == "" || booking.CleanerID != req.CallerID {
			s.logger.Warn("Cancel: access denied for caller=%s to booking id=%s", req.CallerID, req.BookingID)
			return ErrAccessDenied
		}

		// 3. Проверяем статус
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", req.BookingID, booking.Status)
			return ErrCannotCancel
		}

		// 4. Меняем статус
		if err := s.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", req.BookingID)
	return models.FromDomainBooking(result), nil
}

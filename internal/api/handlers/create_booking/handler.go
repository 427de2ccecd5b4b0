package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/CleanClick-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid booking request"
	msgNotPriced          = "no rate defined for this configuration"
	msgCleanerNotFound    = "cleaner not found"
	msgSlotNotAvailable   = "time slot no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: cleaner_id=%s, date=%s, block=%s",
				req.CleanerID, req.Date, req.TimeBlock)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCleanerNotFound):
			h.logger.Warn("POST /bookings - Cleaner not found: cleaner_id=%s", req.CleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		case errors.Is(err, createBooking.ErrNotPriced):
			h.logger.Warn("POST /bookings - Not priced: cleaner_id=%s, rooms=%d-%d",
				req.CleanerID, req.Bedrooms, req.Bathrooms)
			handlers.RespondBadRequest(w, msgNotPriced)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+detail(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: cleaner_id=%s, error=%v", req.CleanerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, cleaner_id=%s",
		result.ID, result.CleanerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// detail убирает текст sentinel ошибки, клиент видит только суть проблемы
func detail(err error) string {
	return strings.TrimPrefix(err.Error(), createBooking.ErrInvalidInput.Error()+": ")
}

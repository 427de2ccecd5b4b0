package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingParams   = "cleanerId and date are required"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgCleanerNotFound = "cleaner not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?cleanerId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	cleanerID := query.Get("cleanerId")
	date := query.Get("date")

	if cleanerID == "" || date == "" {
		h.logger.Warn("GET /availability - Missing params: cleaner_id=%q, date=%q", cleanerID, date)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CleanerID: cleanerID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCleanerNotFound):
			h.logger.Warn("GET /availability - Cleaner not found: cleaner_id=%s", cleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to resolve availability: cleaner_id=%s, date=%s, error=%v",
				cleanerID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

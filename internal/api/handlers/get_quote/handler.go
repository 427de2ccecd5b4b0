package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	getQuote "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_quote"
)

const (
	msgInvalidParams   = "cleanerId, bedrooms and bathrooms are required"
	msgInvalidInput    = "invalid quote request"
	msgNotPriced       = "no rate defined for this configuration"
	msgCleanerNotFound = "cleaner not found"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/quote?cleanerId=...&bedrooms=N&bathrooms=N&frequency=...&serviceType=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bedrooms, errBed := strconv.Atoi(query.Get("bedrooms"))
	bathrooms, errBath := strconv.Atoi(query.Get("bathrooms"))
	cleanerID := query.Get("cleanerId")
	if cleanerID == "" || errBed != nil || errBath != nil {
		h.logger.Warn("GET /quote - Invalid params: %s", r.URL.RawQuery)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{
		CleanerID:   cleanerID,
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Frequency:   query.Get("frequency"),
		ServiceType: query.Get("serviceType"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrCleanerNotFound):
			h.logger.Warn("GET /quote - Cleaner not found: cleaner_id=%s", cleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		case errors.Is(err, getQuote.ErrNotPriced):
			handlers.RespondBadRequest(w, msgNotPriced)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /quote - Failed to compute quote: cleaner_id=%s, error=%v", cleanerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

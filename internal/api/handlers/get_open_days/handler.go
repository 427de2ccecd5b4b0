package get_open_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
)

const (
	msgInvalidCount    = "count must be a positive integer"
	msgInvalidQuery    = "invalid from or count"
	msgCleanerNotFound = "cleaner not found"
)

type Handler struct {
	service CleanerService
	logger  Logger
}

func NewHandler(service CleanerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/cleaners/{id}/days?from=YYYY-MM-DD&count=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	query := r.URL.Query()

	var count int
	if raw := query.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.logger.Warn("GET /cleaners/{id}/days - Invalid count: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		count = n
	}

	result, err := h.service.ListOpenDays(r.Context(), &models.ListOpenDaysRequest{
		CleanerID: id,
		From:      query.Get("from"),
		Count:     count,
	})
	if err != nil {
		switch {
		case errors.Is(err, cleaners.ErrCleanerNotFound):
			h.logger.Warn("GET /cleaners/{id}/days - Cleaner not found: id=%s", id)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		case errors.Is(err, cleaners.ErrInvalidInput):
			h.logger.Warn("GET /cleaners/{id}/days - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /cleaners/{id}/days - Failed to list days: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_cleaner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners"
)

const msgCleanerNotFound = "cleaner not found"

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

// Handle GET /api/cleaners/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cleaners.ErrCleanerNotFound) {
			h.logger.Warn("GET /cleaners/{id} - Cleaner not found: id=%s", id)
			handlers.RespondNotFound(w, msgCleanerNotFound)
			return
		}
		h.logger.Error("GET /cleaners/{id} - Failed to get cleaner: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_cleaners

import (
	"net/http"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
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

// Handle GET /api/cleaners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cleaners - Failed to list cleaners: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

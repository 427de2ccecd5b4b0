package get_bookings

import (
	"net/http"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
)

const msgCleanerIDRequired = "cleanerId required"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings?cleanerId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cleanerID := r.URL.Query().Get("cleanerId")
	if cleanerID == "" {
		h.logger.Warn("GET /bookings - Missing cleanerId")
		handlers.RespondBadRequest(w, msgCleanerIDRequired)
		return
	}

	result, err := h.service.ListByCleaner(r.Context(), cleanerID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: cleaner_id=%s, error=%v", cleanerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings fetched successfully: cleaner_id=%s, count=%d", cleanerID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

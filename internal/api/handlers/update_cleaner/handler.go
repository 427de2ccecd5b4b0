package update_cleaner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanClick-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "a bearer token for this cleaner is required"
	msgInvalidProfile     = "invalid profile data"
	msgCleanerNotFound    = "cleaner not found"
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

// Handle PUT /api/cleaners/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok || callerID != id {
		h.logger.Warn("PUT /cleaners/{id} - Caller is not the owner: id=%s, caller=%s", id, callerID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateCleanerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cleaners/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Warn("PUT /cleaners/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfile)
		return
	}

	result, err := h.service.Update(r.Context(), id, req.ToServiceRequest(callerID))
	if err != nil {
		switch {
		case errors.Is(err, cleaners.ErrAccessDenied):
			h.logger.Warn("PUT /cleaners/{id} - Access denied: id=%s, caller=%s", id, callerID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, cleaners.ErrInvalidInput):
			h.logger.Warn("PUT /cleaners/{id} - Invalid profile: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		case errors.Is(err, cleaners.ErrCleanerNotFound):
			h.logger.Warn("PUT /cleaners/{id} - Cleaner not found: id=%s", id)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		default:
			h.logger.Error("PUT /cleaners/{id} - Failed to update cleaner: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cleaners/{id} - Cleaner updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

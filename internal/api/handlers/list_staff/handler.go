package list_staff

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListStaff(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - count=%d", len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
//
// The view depends on the caller's role: the admin sees a two-week window,
// staff see today's schedule and customers see their history.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Dashboard(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: user_id=%d, role=%s, error=%v", actor.UserID, actor.Role, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - user_id=%d, role=%s, count=%d", actor.UserID, actor.Role, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

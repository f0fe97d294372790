package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
)

const (
	msgUnauthorized = "authentication required"
	msgMissingRange = "from and to are required"
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange = "from must not be after to"
	msgForbidden    = "access denied"
)

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

// Handle GET /api/v1/admin/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from == nil || to == nil {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.service.ListRange(r.Context(), &models.ListRangeRequest{
		Actor: actor,
		From:  *from,
		To:    *to,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /admin/reservations - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - from=%s, to=%s, count=%d",
		r.URL.Query().Get("from"), r.URL.Query().Get("to"), len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

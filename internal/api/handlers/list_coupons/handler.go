package list_coupons

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coupons
//
// Lists the caller's unused, unexpired coupons.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListAvailable(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /coupons - Failed to list coupons: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coupons - user_id=%d, count=%d", actor.UserID, len(result.Coupons))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package apply_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	applyCoupon "github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
)

const (
	msgUnauthorized         = "authentication required"
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgReservationNotFound  = "reservation not found"
	msgReservationInactive  = "reservation is not active"
	msgCouponNotFound       = "coupon not found"
	msgCouponNotOwned       = "coupon belongs to another user"
	msgCouponAlreadyUsed    = "coupon has already been used"
	msgCouponExpired        = "coupon has expired"
	msgDiscountApplied      = "a discount is already applied to this reservation"
	msgForbidden            = "access denied"
)

type Handler struct {
	useCase ApplyCouponUseCase
	logger  Logger
}

func NewHandler(useCase ApplyCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/coupon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/coupon - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req ApplyCouponRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/coupon - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, reservationID))
	if err != nil {
		switch {
		case errors.Is(err, applyCoupon.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, applyCoupon.ErrCouponNotFound):
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, applyCoupon.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/coupon - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, applyCoupon.ErrCouponNotOwned):
			h.logger.Warn("POST /reservations/{id}/coupon - Coupon not owned: coupon_id=%d, user_id=%d", req.CouponID, actor.UserID)
			handlers.RespondForbidden(w, msgCouponNotOwned)

		case errors.Is(err, applyCoupon.ErrCouponAlreadyUsed):
			handlers.RespondConflict(w, msgCouponAlreadyUsed)

		case errors.Is(err, applyCoupon.ErrDiscountAlreadyApplied):
			handlers.RespondConflict(w, msgDiscountApplied)

		case errors.Is(err, applyCoupon.ErrReservationNotActive):
			handlers.RespondConflict(w, msgReservationInactive)

		case errors.Is(err, applyCoupon.ErrCouponExpired):
			handlers.RespondUnprocessable(w, msgCouponExpired)

		case errors.Is(err, applyCoupon.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/{id}/coupon - Failed to apply coupon: reservation_id=%d, coupon_id=%d, error=%v",
				reservationID, req.CouponID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/coupon - Coupon applied: reservation_id=%d, coupon_id=%d, discount=%d",
		result.ReservationID, result.CouponID, result.AppliedDiscount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

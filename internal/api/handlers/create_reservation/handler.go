package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_reservation"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgCustomerNotFound   = "customer not found"
	msgStaffNotFound      = "staff not found"
	msgSlotAlreadyBooked  = "the selected time slot is already booked"
	msgStaffUnavailable   = "staff member is not working at the selected time"
	msgReservationInPast  = "reservation time is in the past"
	msgAccessDenied       = "not allowed to book for another customer"
	msgCouponNotFound     = "coupon not found"
	msgCouponNotOwned     = "coupon belongs to another user"
	msgCouponAlreadyUsed  = "coupon has already been used"
	msgCouponExpired      = "coupon has expired"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /reservations - Slot already booked: user_id=%d, date=%s, slot=%s", actor.UserID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createReservation.ErrStaffUnavailable):
			h.logger.Warn("POST /reservations - Staff unavailable: user_id=%d, date=%s, slot=%s", actor.UserID, req.Date, req.TimeSlot)
			handlers.RespondUnprocessable(w, msgStaffUnavailable)

		case errors.Is(err, createReservation.ErrReservationInPast):
			handlers.RespondUnprocessable(w, msgReservationInPast)

		case errors.Is(err, createReservation.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrCouponNotFound):
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, createReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createReservation.ErrCouponNotOwned):
			handlers.RespondForbidden(w, msgCouponNotOwned)

		case errors.Is(err, createReservation.ErrCouponAlreadyUsed):
			handlers.RespondConflict(w, msgCouponAlreadyUsed)

		case errors.Is(err, createReservation.ErrCouponExpired):
			handlers.RespondUnprocessable(w, msgCouponExpired)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, customer_id=%d",
		result.Reservation.ID, result.Reservation.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

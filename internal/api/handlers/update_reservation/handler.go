package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	updateReservation "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_reservation"
)

const (
	msgUnauthorized         = "authentication required"
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "reservation not found"
	msgNotActive            = "reservation is cancelled and cannot be changed"
	msgStaffNotFound        = "staff not found"
	msgSlotAlreadyBooked    = "the selected time slot is already booked"
	msgStaffUnavailable     = "staff member is not working at the selected time"
	msgReservationInPast    = "reservation time is in the past"
	msgForbidden            = "access denied"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, reservationID)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrReservationNotActive):
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, updateReservation.ErrSlotAlreadyBooked):
			h.logger.Warn("PUT /reservations/{id} - Slot already booked: reservation_id=%d, date=%s, slot=%s",
				reservationID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, updateReservation.ErrStaffUnavailable):
			handlers.RespondUnprocessable(w, msgStaffUnavailable)

		case errors.Is(err, updateReservation.ErrReservationInPast):
			handlers.RespondUnprocessable(w, msgReservationInPast)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d, user_id=%d", reservationID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package submit_survey

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	submitSurvey "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_survey"
)

const (
	msgUnauthorized         = "authentication required"
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "reservation not found"
	msgNotEligible          = "survey is not available for a cancelled reservation"
	msgNotCompleted         = "survey is available once the appointment has started"
	msgAlreadySubmitted     = "survey has already been submitted for this reservation"
	msgForbidden            = "access denied"
)

type Handler struct {
	useCase SubmitSurveyUseCase
	logger  Logger
}

func NewHandler(useCase SubmitSurveyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/survey
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/survey - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req SubmitSurveyRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/survey - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, reservationID))
	if err != nil {
		switch {
		case errors.Is(err, submitSurvey.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitSurvey.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/survey - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitSurvey.ErrSurveyAlreadySubmitted):
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, submitSurvey.ErrReservationNotEligible):
			handlers.RespondUnprocessable(w, msgNotEligible)

		case errors.Is(err, submitSurvey.ErrReservationNotCompleted):
			handlers.RespondUnprocessable(w, msgNotCompleted)

		case errors.Is(err, submitSurvey.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/{id}/survey - Failed to submit survey: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/survey - Survey submitted: reservation_id=%d, user_id=%d, coupon_issued=%t",
		reservationID, actor.UserID, result.CouponIssued)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

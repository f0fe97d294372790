package upsert_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgStaffNotFound      = "staff not found"
	msgForbidden          = "not allowed to manage this shift"
	msgInvalidTimeRange   = "shift start must be before end"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/shifts
//
// Creates the shift for (staff, date) or replaces its hours when one exists.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpsertShiftRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /shifts - Invalid request body: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	shift, err := h.service.Upsert(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrAccessDenied):
			h.logger.Warn("PUT /shifts - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, shifts.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, shifts.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, shifts.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /shifts - Failed to save shift: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shifts - Shift saved: shift_id=%d, staff_id=%d, date=%s, %s-%s",
		shift.ID, shift.StaffID, shift.Date, shift.StartTime, shift.EndTime)
	handlers.RespondJSON(w, http.StatusOK, shift)
}

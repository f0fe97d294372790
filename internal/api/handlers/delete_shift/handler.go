package delete_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts"
)

const (
	msgUnauthorized   = "authentication required"
	msgInvalidShiftID = "invalid shift id"
	msgNotFound       = "shift not found"
	msgForbidden      = "not allowed to manage this shift"
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

// Handle DELETE /api/v1/shifts/{shiftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftID, err := handlers.PathID(r, "shiftId")
	if err != nil {
		h.logger.Warn("DELETE /shifts/{id} - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), actor, shiftID); err != nil {
		switch {
		case errors.Is(err, shifts.ErrShiftNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shifts.ErrAccessDenied):
			h.logger.Warn("DELETE /shifts/{id} - Access denied: shift_id=%d, user_id=%d", shiftID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /shifts/{id} - Failed to delete shift: shift_id=%d, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /shifts/{id} - Shift deleted: shift_id=%d, user_id=%d", shiftID, actor.UserID)
	handlers.RespondNoContent(w)
}

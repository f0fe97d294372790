package list_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts/models"
)

const (
	msgInvalidStaffID = "invalid staff id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange   = "from must not be after to"
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

// Handle GET /api/v1/shifts?staffId=&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.QueryID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /shifts - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListShiftsRequest{
		StaffID: staffID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /shifts - Failed to list shifts: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shifts - count=%d", len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

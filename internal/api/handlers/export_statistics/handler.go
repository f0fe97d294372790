package export_statistics

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/statistics"
	"github.com/m04kA/SMC-SalonBooking/internal/service/statistics/models"
)

const (
	msgUnauthorized  = "authentication required"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidPeriod = "from must not be after to"
	msgForbidden     = "access denied"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/statistics/export?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
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

	result, err := h.service.Get(r.Context(), &models.GetStatisticsRequest{Actor: actor, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, statistics.ErrAccessDenied):
			h.logger.Warn("GET /admin/statistics/export - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/statistics/export - Failed to build statistics: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// rendered into a buffer so a write error can still produce a 500
	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		h.logger.Error("GET /admin/statistics/export - Failed to render CSV: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="statistics_%s_%s.csv"`, result.From, result.To))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("GET /admin/statistics/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/statistics/export - from=%s, to=%s, total=%d", result.From, result.To, result.Total)
}

package list_surveys

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/surveys"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "access denied"
)

type Handler struct {
	service SurveyService
	logger  Logger
}

func NewHandler(service SurveyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/surveys
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, surveys.ErrAccessDenied):
			h.logger.Warn("GET /admin/surveys - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/surveys - Failed to list surveys: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/surveys - count=%d", len(result.Surveys))
	handlers.RespondJSON(w, http.StatusOK, result)
}

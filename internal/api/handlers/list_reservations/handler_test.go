package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	req *models.ListRangeRequest
	err error
}

func (f *fakeService) ListRange(_ context.Context, req *models.ListRangeRequest) (*models.ReservationListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1}, {ID: 2}}}, nil
}

func call(svc ReservationService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations"+query, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := call(svc, "?from=2025-05-01&to=2025-05-31")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-05-01", svc.req.From.Format(domain.DateFormat))
	assert.Equal(t, "2025-05-31", svc.req.To.Format(domain.DateFormat))
	assert.Equal(t, domain.RoleAdmin, svc.req.Actor.Role)
}

func TestHandle_Rejections(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, call(&fakeService{}, "?from=2025-05-01").Code)
	assert.Equal(t, http.StatusBadRequest, call(&fakeService{}, "?from=May&to=2025-05-31").Code)
	assert.Equal(t, http.StatusBadRequest,
		call(&fakeService{err: reservations.ErrInvalidInput}, "?from=2025-06-01&to=2025-05-01").Code)
	assert.Equal(t, http.StatusForbidden,
		call(&fakeService{err: reservations.ErrAccessDenied}, "?from=2025-05-01&to=2025-05-31").Code)
}

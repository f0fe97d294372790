package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	actor domain.Actor
	id    int64
	err   error
}

func (f *fakeService) Cancel(_ context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	f.actor, f.id = actor, id
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, CustomerID: actor.UserID, Status: string(domain.StatusCancelled)}, nil
}

func call(svc ReservationService, id string, withActor bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 7, Role: domain.RoleCustomer}))
	}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}

	rec := call(svc, "15", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), svc.id)
	assert.Equal(t, int64(7), svc.actor.UserID)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestHandle_Rejections(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, call(&fakeService{}, "0", true).Code)
	assert.Equal(t, http.StatusUnauthorized, call(&fakeService{}, "15", false).Code)
	assert.Equal(t, http.StatusNotFound, call(&fakeService{err: reservations.ErrReservationNotFound}, "15", true).Code)
	assert.Equal(t, http.StatusForbidden, call(&fakeService{err: reservations.ErrAccessDenied}, "15", true).Code)
	assert.Equal(t, http.StatusInternalServerError, call(&fakeService{err: reservations.ErrInternal}, "15", true).Code)
}

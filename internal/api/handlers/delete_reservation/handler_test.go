package delete_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	id  int64
	err error
}

func (f *fakeService) Delete(_ context.Context, _ domain.Actor, id int64) error {
	f.id = id
	return f.err
}

func call(svc ReservationService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reservations/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeService{}

	rec := call(svc, "40")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(40), svc.id)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{reservations.ErrReservationNotActive, http.StatusConflict},
		{reservations.ErrReservationNotFound, http.StatusNotFound},
		{reservations.ErrAccessDenied, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, call(&fakeService{err: tt.err}, "40").Code)
		})
	}
}

package apply_coupon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	applyCoupon "github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	req *applyCoupon.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *applyCoupon.Request) (*applyCoupon.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &applyCoupon.Response{ReservationID: req.ReservationID, CouponID: req.CouponID, AppliedDiscount: 5}, nil
}

func call(uc ApplyCouponUseCase, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+id+"/coupon", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 7, Role: domain.RoleCustomer}))

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Applied(t *testing.T) {
	uc := &fakeUseCase{}

	rec := call(uc, "12", `{"couponId":4}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), uc.req.ReservationID)
	assert.Equal(t, int64(4), uc.req.CouponID)
	assert.JSONEq(t, `{"reservationId":12,"couponId":4,"appliedDiscount":5}`, rec.Body.String())
}

func TestHandle_BadInput(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, call(&fakeUseCase{}, "x", `{"couponId":4}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(&fakeUseCase{}, "12", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(&fakeUseCase{}, "12", `{"couponId":-1}`).Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{applyCoupon.ErrReservationNotFound, http.StatusNotFound},
		{applyCoupon.ErrCouponNotFound, http.StatusNotFound},
		{applyCoupon.ErrAccessDenied, http.StatusForbidden},
		{applyCoupon.ErrCouponNotOwned, http.StatusForbidden},
		{applyCoupon.ErrCouponAlreadyUsed, http.StatusConflict},
		{applyCoupon.ErrDiscountAlreadyApplied, http.StatusConflict},
		{applyCoupon.ErrReservationNotActive, http.StatusConflict},
		{applyCoupon.ErrCouponExpired, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, call(&fakeUseCase{err: tt.err}, "12", `{"couponId":4}`).Code)
		})
	}
}

package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/staff/{staffId}/available-slots", NewHandler(uc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	start, end := types.MustTimeString("09:00"), types.MustTimeString("10:00")
	uc := &fakeUseCase{}
	uc.resp = &getAvailableSlots.Response{
		StaffID:    3,
		StaffName:  "Aki",
		ShiftStart: &start,
		ShiftEnd:   &end,
		Slots:      []types.TimeString{"09:00", "09:30"},
	}

	rec := serve(uc, "/staff/3/available-slots?date=2025-05-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), uc.req.StaffID)
	assert.Equal(t, "2025-05-10", uc.req.Date.Format("2006-01-02"))
	assert.Contains(t, rec.Body.String(), `"slots":["09:00","09:30"]`)
	assert.Contains(t, rec.Body.String(), `"shiftEnd":"10:00"`)
}

func TestHandle_NoShiftRendersEmptyList(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{StaffID: 3, Slots: []types.TimeString{}}}

	rec := serve(uc, "/staff/3/available-slots?date=2025-05-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.NotContains(t, rec.Body.String(), "shiftStart")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"bad staff id", "/staff/abc/available-slots?date=2025-05-10", nil, http.StatusBadRequest},
		{"missing date", "/staff/3/available-slots", nil, http.StatusBadRequest},
		{"bad date", "/staff/3/available-slots?date=10-05-2025", nil, http.StatusBadRequest},
		{"unknown staff", "/staff/3/available-slots?date=2025-05-10", getAvailableSlots.ErrStaffNotFound, http.StatusNotFound},
		{"internal", "/staff/3/available-slots?date=2025-05-10", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

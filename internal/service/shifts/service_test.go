package shifts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// fakeShifts keeps one shift per (staff, date) like the unique key in the database
type fakeShifts struct {
	byID   map[int64]*domain.Shift
	nextID int64
	filter domain.ShiftsFilter
}

func newFakeShifts() *fakeShifts {
	return &fakeShifts{byID: map[int64]*domain.Shift{}, nextID: 1}
}

func (f *fakeShifts) Upsert(_ context.Context, s *domain.Shift) (*domain.Shift, error) {
	for _, existing := range f.byID {
		if existing.StaffID == s.StaffID && existing.ShiftDate.Equal(s.ShiftDate) {
			existing.StartTime, existing.EndTime = s.StartTime, s.EndTime
			return existing, nil
		}
	}
	s.ID = f.nextID
	f.nextID++
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeShifts) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShifts) GetByFilter(_ context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error) {
	f.filter = filter
	result := make([]*domain.Shift, 0)
	for _, s := range f.byID {
		if filter.StaffID == nil || *filter.StaffID == s.StaffID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShifts) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return shiftRepo.ErrShiftNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeUsers map[int64]*domain.User

func (f fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

var (
	day   = time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)
	admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	aki   = domain.Actor{UserID: 3, Role: domain.RoleStaff}
	mio   = domain.Actor{UserID: 4, Role: domain.RoleStaff}
	hana  = domain.Actor{UserID: 7, Role: domain.RoleCustomer}
)

func newService() (*Service, *fakeShifts) {
	shifts := newFakeShifts()
	users := fakeUsers{
		1: {ID: 1, Role: domain.RoleAdmin},
		3: {ID: 3, Role: domain.RoleStaff},
		4: {ID: 4, Role: domain.RoleStaff},
		7: {ID: 7, Role: domain.RoleCustomer},
	}
	return NewService(shifts, users, logger.Nop()), shifts
}

func upsert(actor domain.Actor, staffID *int64, start, end string) *models.UpsertShiftRequest {
	return &models.UpsertShiftRequest{
		Actor:     actor,
		StaffID:   staffID,
		Date:      day.Add(15 * time.Hour),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestUpsert_StaffOwnShift(t *testing.T) {
	svc, shifts := newService()

	created, err := svc.Upsert(context.Background(), upsert(aki, nil, "09:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.StaffID)
	assert.Equal(t, "2025-05-10", created.Date)

	updated, err := svc.Upsert(context.Background(), upsert(aki, nil, "10:00", "18:00"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "second write for the same date replaces the window")
	assert.Equal(t, "18:00", updated.EndTime)
	assert.Len(t, shifts.byID, 1)
}

func TestUpsert_AdminForAnyStaff(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Upsert(context.Background(), upsert(admin, ptr.Ptr(int64(4)), "13:00", "17:00"))

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.StaffID)
}

func TestUpsert_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpsertShiftRequest
		wantErr error
	}{
		{"start equals end", upsert(aki, nil, "09:00", "09:00"), ErrInvalidTimeRange},
		{"start after end", upsert(aki, nil, "12:00", "09:00"), ErrInvalidTimeRange},
		{"malformed time", upsert(aki, nil, "9am", "12:00"), ErrInvalidInput},
		{"customer", upsert(hana, nil, "09:00", "12:00"), ErrAccessDenied},
		{"staff for another staff", upsert(aki, ptr.Ptr(int64(4)), "09:00", "12:00"), ErrAccessDenied},
		{"admin for a customer", upsert(admin, ptr.Ptr(int64(7)), "09:00", "12:00"), ErrStaffNotFound},
		{"admin for unknown user", upsert(admin, ptr.Ptr(int64(99)), "09:00", "12:00"), ErrStaffNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, shifts := newService()

			_, err := svc.Upsert(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, shifts.byID)
		})
	}
}

func TestDelete(t *testing.T) {
	svc, shifts := newService()
	own, err := svc.Upsert(context.Background(), upsert(aki, nil, "09:00", "12:00"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), mio, own.ID), ErrAccessDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), hana, own.ID), ErrAccessDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), aki, 99), ErrShiftNotFound)

	require.NoError(t, svc.Delete(context.Background(), aki, own.ID))
	assert.Empty(t, shifts.byID)
}

func TestDelete_AdminAnyShift(t *testing.T) {
	svc, _ := newService()
	own, err := svc.Upsert(context.Background(), upsert(aki, nil, "09:00", "12:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), admin, own.ID))
}

func TestList(t *testing.T) {
	svc, shifts := newService()
	_, err := svc.Upsert(context.Background(), upsert(aki, nil, "09:00", "12:00"))
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), upsert(mio, nil, "13:00", "17:00"))
	require.NoError(t, err)

	from := day.Add(10 * time.Hour)
	resp, err := svc.List(context.Background(), &models.ListShiftsRequest{StaffID: ptr.Ptr(int64(4)), From: &from})

	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, "13:00", resp.Shifts[0].StartTime)
	assert.Equal(t, day, *shifts.filter.StartDate, "bounds are truncated to dates")
}

func TestList_InvertedRange(t *testing.T) {
	svc, _ := newService()
	from, to := day, day.AddDate(0, 0, -1)

	_, err := svc.List(context.Background(), &models.ListShiftsRequest{From: &from, To: &to})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

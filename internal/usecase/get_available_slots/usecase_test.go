package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeReservations struct {
	items  []*domain.Reservation
	filter domain.ReservationsFilter
	err    error
}

// GetByFilter honours the status filter the way the database does
func (f *fakeReservations) GetByFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range f.items {
		for _, s := range filter.Statuses {
			if r.Status == s {
				result = append(result, r)
				break
			}
		}
	}
	return result, nil
}

type fakeShifts struct {
	shift *domain.Shift
}

func (f *fakeShifts) GetByStaffAndDate(context.Context, int64, time.Time) (*domain.Shift, error) {
	if f.shift == nil {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return f.shift, nil
}

type fakeUsers struct {
	users map[int64]*domain.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

var day = time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

func staffUsers() *fakeUsers {
	return &fakeUsers{users: map[int64]*domain.User{
		3: {ID: 3, Name: "Aki", Role: domain.RoleStaff},
		7: {ID: 7, Name: "Hana", Role: domain.RoleCustomer},
	}}
}

func shift(start, end string) *fakeShifts {
	return &fakeShifts{shift: &domain.Shift{
		StaffID:   3,
		ShiftDate: day,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
	}}
}

func reservationAt(at string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		StaffID:         ptr.Ptr(int64(3)),
		ReservationDate: day,
		TimeSlot:        types.MustTimeString(at),
		Status:          status,
	}
}

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.MustTimeString(v)
	}
	return result
}

func TestExecute_NoShiftMeansNoSlots(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeShifts{}, staffUsers(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Nil(t, resp.ShiftStart)
}

func TestExecute_HalfOpenShift(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, shift("09:00", "10:00"), staffUsers(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})

	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "09:30"), resp.Slots)
	assert.Equal(t, "Aki", resp.StaffName)
}

func TestExecute_ActiveReservationRemovesSlot(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{reservationAt("09:30", domain.StatusBooked)}}
	uc := NewUseCase(reservations, shift("09:00", "10:00"), staffUsers(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})

	require.NoError(t, err)
	assert.Equal(t, slots("09:00"), resp.Slots)
	assert.Equal(t, domain.ActiveStatuses, reservations.filter.Statuses)
}

func TestExecute_InactiveReservationsKeepSlot(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		reservationAt("09:30", domain.StatusCancelled),
		reservationAt("09:00", domain.StatusDeleted),
	}}
	uc := NewUseCase(reservations, shift("09:00", "10:00"), staffUsers(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})

	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "09:30"), resp.Slots)
}

func TestExecute_OffGridReservationDoesNotCollide(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{reservationAt("09:15", domain.StatusBooked)}}
	uc := NewUseCase(reservations, shift("09:00", "10:00"), staffUsers(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})

	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "09:30"), resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("unknown staff", func(t *testing.T) {
		uc := NewUseCase(&fakeReservations{}, shift("09:00", "10:00"), staffUsers(), logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{StaffID: 99, Date: day})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("not a staff member", func(t *testing.T) {
		uc := NewUseCase(&fakeReservations{}, shift("09:00", "10:00"), staffUsers(), logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: day})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeReservations{}, shift("09:00", "10:00"), staffUsers(), logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{StaffID: 3})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := NewUseCase(&fakeReservations{err: errors.New("boom")}, shift("09:00", "10:00"), staffUsers(), logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{StaffID: 3, Date: day})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		granularity int
		want        []types.TimeString
	}{
		{name: "end on boundary excluded", start: "09:00", end: "10:00", granularity: 30, want: slots("09:00", "09:30")},
		{name: "end off boundary", start: "09:00", end: "10:10", granularity: 30, want: slots("09:00", "09:30", "10:00")},
		{name: "empty window", start: "10:00", end: "10:00", granularity: 30, want: slots()},
		{name: "zero granularity", start: "09:00", end: "10:00", granularity: 0, want: slots()},
		{name: "negative granularity", start: "09:00", end: "10:00", granularity: -30, want: slots()},
		{name: "stops before midnight wrap", start: "23:00", end: "23:59", granularity: 30, want: slots("23:00", "23:30")},
		{name: "large step", start: "23:00", end: "23:59", granularity: 120, want: slots("23:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateSlots(types.MustTimeString(tt.start), types.MustTimeString(tt.end), tt.granularity)
			assert.Equal(t, tt.want, got)
		})
	}
}

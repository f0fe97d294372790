package slot_validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeReservations struct {
	items []*domain.Reservation
	err   error
}

func (f *fakeReservations) GetByFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range f.items {
		if filter.StaffID != nil && (r.StaffID == nil || *r.StaffID != *filter.StaffID) {
			continue
		}
		if filter.StartDate != nil && r.ReservationDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.ReservationDate.After(*filter.EndDate) {
			continue
		}
		if filter.TimeSlot != nil && !r.TimeSlot.Equal(*filter.TimeSlot) {
			continue
		}
		if filter.ExcludeID != nil && r.ID == *filter.ExcludeID {
			continue
		}
		if len(filter.Statuses) > 0 && !hasStatus(filter.Statuses, r.Status) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func hasStatus(statuses []domain.ReservationStatus, s domain.ReservationStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

type fakeShifts struct {
	shift *domain.Shift
	err   error
}

func (f *fakeShifts) GetByStaffAndDate(_ context.Context, staffID int64, date time.Time) (*domain.Shift, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.shift == nil || f.shift.StaffID != staffID || !f.shift.ShiftDate.Equal(date) {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return f.shift, nil
}

var day = time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

func nineToTen() *fakeShifts {
	return &fakeShifts{shift: &domain.Shift{
		ID:        1,
		StaffID:   3,
		ShiftDate: day,
		StartTime: types.MustTimeString("09:00"),
		EndTime:   types.MustTimeString("10:00"),
	}}
}

func booked(id int64, at string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		CustomerID:      7,
		StaffID:         ptr.Ptr(int64(3)),
		ReservationDate: day,
		TimeSlot:        types.MustTimeString(at),
		Status:          status,
	}
}

func request(at string) *Request {
	return &Request{StaffID: 3, Date: day, Time: types.MustTimeString(at)}
}

func TestValidate_ShiftBoundaries(t *testing.T) {
	v := NewValidator(&fakeReservations{}, nineToTen(), logger.Nop())

	tests := []struct {
		at      string
		wantErr error
	}{
		{at: "09:00"},
		{at: "09:30"},
		{at: "09:59"},
		{at: "10:00", wantErr: ErrStaffUnavailable},
		{at: "08:59", wantErr: ErrStaffUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			err := v.Validate(context.Background(), request(tt.at))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NoShift(t *testing.T) {
	v := NewValidator(&fakeReservations{}, &fakeShifts{}, logger.Nop())

	err := v.Validate(context.Background(), request("09:00"))
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestValidate_DoubleBooking(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{booked(40, "09:30", domain.StatusBooked)}}
	v := NewValidator(reservations, nineToTen(), logger.Nop())

	err := v.Validate(context.Background(), request("09:30"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestValidate_ConflictCheckedBeforeShift(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{booked(40, "09:30", domain.StatusBooked)}}
	v := NewValidator(reservations, &fakeShifts{}, logger.Nop())

	err := v.Validate(context.Background(), request("09:30"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestValidate_InactiveReservationsDoNotBlock(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		booked(40, "09:30", domain.StatusCancelled),
		booked(41, "09:30", domain.StatusDeleted),
	}}
	v := NewValidator(reservations, nineToTen(), logger.Nop())

	assert.NoError(t, v.Validate(context.Background(), request("09:30")))
}

func TestValidate_SelfExclusion(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{booked(40, "09:30", domain.StatusBooked)}}
	v := NewValidator(reservations, nineToTen(), logger.Nop())

	req := request("09:30")
	req.ExcludeReservationID = ptr.Ptr(int64(40))

	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestValidate_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		v := NewValidator(&fakeReservations{}, nineToTen(), logger.Nop())

		err := v.Validate(context.Background(), &Request{StaffID: 3, Date: day, Time: "9am"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reservation storage failure", func(t *testing.T) {
		v := NewValidator(&fakeReservations{err: errors.New("boom")}, nineToTen(), logger.Nop())

		err := v.Validate(context.Background(), request("09:00"))
		require.ErrorIs(t, err, ErrInternal)
	})

	t.Run("shift storage failure", func(t *testing.T) {
		v := NewValidator(&fakeReservations{}, &fakeShifts{err: errors.New("boom")}, logger.Nop())

		err := v.Validate(context.Background(), request("09:00"))
		require.ErrorIs(t, err, ErrInternal)
	})
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Shift is a staff member's working window for one calendar date.
// There is at most one shift per (staff, date).
type Shift struct {
	ID        int64
	StaffID   int64
	ShiftDate time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidRange reports whether start is strictly before end
func (s *Shift) HasValidRange() bool {
	return s.StartTime.IsBefore(s.EndTime)
}

// Covers reports whether t is a bookable start time inside the shift:
// start <= t <= end - 1 minute.
func (s *Shift) Covers(t types.TimeString) bool {
	lastBookable, err := s.EndTime.AddMinutes(-ShiftEndToleranceMinutes)
	if err != nil {
		return false
	}
	return !t.IsBefore(s.StartTime) && !t.IsAfter(lastBookable)
}

// ShiftsFilter selects shifts; nil fields are not constrained
type ShiftsFilter struct {
	StaffID   *int64
	StartDate *time.Time
	EndDate   *time.Time
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusCancelled ReservationStatus = "cancelled"
	StatusDeleted   ReservationStatus = "deleted" // soft delete, row retained
)

// Reservation is a customer's appointment, optionally with a specific staff member
type Reservation struct {
	ID              int64
	CustomerID      int64
	StaffID         *int64
	ReservationDate time.Time
	TimeSlot        types.TimeString
	Menu            string
	Status          ReservationStatus
	AppliedDiscount int

	// Read-only, joined from users
	StaffName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusBooked
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

func (r *Reservation) IsDeleted() bool {
	return r.Status == StatusDeleted
}

// CanBeCancelled returns true if a cancel request changes state
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusBooked
}

// CanBeUpdated returns true if date, time, staff or menu may still change
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusBooked
}

// HasDiscount returns true once a coupon has been applied
func (r *Reservation) HasDiscount() bool {
	return r.AppliedDiscount > 0
}

// StartsAt returns the appointment start as a point in local time
func (r *Reservation) StartsAt() time.Time {
	return r.TimeSlot.On(DateOnly(r.ReservationDate))
}

// ReservationsFilter selects reservations; nil and empty fields are not constrained
type ReservationsFilter struct {
	CustomerID *int64
	StaffID    *int64
	StartDate  *time.Time
	EndDate    *time.Time
	TimeSlot   *types.TimeString
	ExcludeID  *int64
	Statuses   []ReservationStatus
}

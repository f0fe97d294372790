package update_reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist or is deleted
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrReservationNotActive is returned for cancelled reservations
	ErrReservationNotActive = errors.New("update_reservation: reservation is not active")

	// ErrReservationInPast is returned when the new start has already passed
	ErrReservationInPast = errors.New("update_reservation: reservation time is in the past")

	// ErrStaffNotFound is returned when the new staff id does not belong to a staff member
	ErrStaffNotFound = errors.New("update_reservation: staff not found")

	// ErrSlotAlreadyBooked is returned when another active reservation holds the new slot
	ErrSlotAlreadyBooked = errors.New("update_reservation: slot already booked")

	// ErrStaffUnavailable is returned when the new time is outside the staff member's shift
	ErrStaffUnavailable = errors.New("update_reservation: staff unavailable at this time")

	// ErrAccessDenied is returned when the caller may not edit the reservation
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("update_reservation: internal error")
)

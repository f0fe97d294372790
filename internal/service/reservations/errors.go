package reservations

import "errors"

var (
	// ErrReservationNotFound is returned for unknown and soft-deleted reservations
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationNotActive is returned when only a booked reservation may take the transition
	ErrReservationNotActive = errors.New("reservation is not active")

	// ErrAccessDenied is returned when the caller may not see or change the reservation
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

package get_available_slots

import "errors"

var (
	// ErrStaffNotFound is returned when the id does not belong to a staff member
	ErrStaffNotFound = errors.New("get_available_slots: staff not found")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on unexpected storage failures
	ErrInternal = errors.New("get_available_slots: internal error")
)

package slot_validation

import "errors"

var (
	// ErrSlotAlreadyBooked is returned when another active reservation holds the slot
	ErrSlotAlreadyBooked = errors.New("slot_validation: slot already booked")

	// ErrStaffUnavailable is returned when the staff member has no shift covering the time
	ErrStaffUnavailable = errors.New("slot_validation: staff unavailable at this time")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("slot_validation: invalid input data")

	// ErrInternal is returned on unexpected storage failures
	ErrInternal = errors.New("slot_validation: internal error")
)

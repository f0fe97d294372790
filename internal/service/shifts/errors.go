package shifts

import "errors"

var (
	// ErrShiftNotFound is returned when no shift matches the id
	ErrShiftNotFound = errors.New("shift not found")

	// ErrStaffNotFound is returned when the target user does not exist or is not staff
	ErrStaffNotFound = errors.New("staff not found")

	// ErrAccessDenied is returned when the caller may not manage the shift
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTimeRange is returned when start is not before end
	ErrInvalidTimeRange = errors.New("shift start must be before end")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

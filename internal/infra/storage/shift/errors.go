package shift

import "errors"

var (
	// ErrShiftNotFound is returned when no shift matches the lookup
	ErrShiftNotFound = errors.New("shift.repository: shift not found")

	// ErrInvalidTimeRange is returned when the database rejects start >= end
	ErrInvalidTimeRange = errors.New("shift.repository: start time must be before end time")

	// ErrStaffNotFound is returned when the referenced staff user does not exist
	ErrStaffNotFound = errors.New("shift.repository: staff not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("shift.repository: failed to scan row")
)

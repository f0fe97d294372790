package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches the id
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken is returned when the active-slot unique index rejects a write
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrDiscountAlreadySet is returned when a discount is written over an existing one
	ErrDiscountAlreadySet = errors.New("reservation.repository: discount already applied")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

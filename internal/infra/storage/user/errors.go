package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("user.repository: email already registered")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("user.repository: failed to scan row")
)

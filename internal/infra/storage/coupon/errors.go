package coupon

import "errors"

var (
	// ErrCouponNotFound is returned when no coupon matches the id
	ErrCouponNotFound = errors.New("coupon.repository: coupon not found")

	// ErrCouponAlreadyUsed is returned when a used coupon is consumed again
	ErrCouponAlreadyUsed = errors.New("coupon.repository: coupon already used")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("coupon.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("coupon.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("coupon.repository: failed to scan row")
)

package issue_coupon

import "errors"

var (
	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("issue_coupon: invalid input data")

	// ErrInternal is returned on unexpected storage failures
	ErrInternal = errors.New("issue_coupon: internal error")
)

package statistics

import "errors"

var (
	// ErrAccessDenied is returned to callers who may not read statistics
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPeriod is returned when from is after to
	ErrInvalidPeriod = errors.New("invalid statistics period")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

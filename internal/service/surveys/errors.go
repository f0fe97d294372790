package surveys

import "errors"

var (
	// ErrAccessDenied is returned to callers who may not read survey results
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

package coupons

import "errors"

var (
	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

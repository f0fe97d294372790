package users

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)

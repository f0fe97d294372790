package apply_coupon

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("apply_coupon: reservation not found")

	// ErrReservationNotActive is returned for cancelled or deleted reservations
	ErrReservationNotActive = errors.New("apply_coupon: reservation is not active")

	// ErrCouponNotFound is returned when the coupon does not exist
	ErrCouponNotFound = errors.New("apply_coupon: coupon not found")

	// ErrCouponNotOwned is returned when the coupon belongs to someone else
	ErrCouponNotOwned = errors.New("apply_coupon: coupon belongs to another user")

	// ErrCouponAlreadyUsed is returned when the coupon was consumed before
	ErrCouponAlreadyUsed = errors.New("apply_coupon: coupon already used")

	// ErrCouponExpired is returned when the coupon is past its expiry date
	ErrCouponExpired = errors.New("apply_coupon: coupon expired")

	// ErrDiscountAlreadyApplied is returned when the reservation already carries a discount
	ErrDiscountAlreadyApplied = errors.New("apply_coupon: discount already applied to reservation")

	// ErrAccessDenied is returned when the caller may not modify the reservation
	ErrAccessDenied = errors.New("apply_coupon: access denied")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("apply_coupon: invalid input data")

	// ErrInternal is returned on unexpected storage failures
	ErrInternal = errors.New("apply_coupon: internal error")
)

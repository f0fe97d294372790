package create_reservation

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer id does not exist
	ErrCustomerNotFound = errors.New("create_reservation: customer not found")

	// ErrStaffNotFound is returned when the staff id does not belong to a staff member
	ErrStaffNotFound = errors.New("create_reservation: staff not found")

	// ErrSlotAlreadyBooked is returned when another active reservation holds the slot
	ErrSlotAlreadyBooked = errors.New("create_reservation: slot already booked")

	// ErrStaffUnavailable is returned when the time is outside the staff member's shift
	ErrStaffUnavailable = errors.New("create_reservation: staff unavailable at this time")

	// ErrReservationInPast is returned when the requested start has already passed
	ErrReservationInPast = errors.New("create_reservation: reservation time is in the past")

	// ErrAccessDenied is returned when the caller books for someone else without the right
	ErrAccessDenied = errors.New("create_reservation: access denied")

	// ErrCouponNotFound is returned when the coupon does not exist
	ErrCouponNotFound = errors.New("create_reservation: coupon not found")

	// ErrCouponNotOwned is returned when the coupon belongs to another user
	ErrCouponNotOwned = errors.New("create_reservation: coupon belongs to another user")

	// ErrCouponAlreadyUsed is returned when the coupon was consumed before
	ErrCouponAlreadyUsed = errors.New("create_reservation: coupon already used")

	// ErrCouponExpired is returned when the coupon is past its expiry date
	ErrCouponExpired = errors.New("create_reservation: coupon expired")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_reservation: internal error")
)

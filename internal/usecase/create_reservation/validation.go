package create_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/slot_validation"
)

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot: %v", ErrInvalidInput, err)
	}

	menu := strings.TrimSpace(req.Menu)
	if menu == "" {
		return fmt.Errorf("%w: menu is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(menu) > domain.MaxMenuLength {
		return fmt.Errorf("%w: menu is longer than %d characters", ErrInvalidInput, domain.MaxMenuLength)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.CouponID != nil && *req.CouponID <= 0 {
		return fmt.Errorf("%w: couponID must be positive", ErrInvalidInput)
	}

	return nil
}

// isInPast reports whether the appointment start lies before now
func isInPast(req *Request, now time.Time) bool {
	return req.TimeSlot.On(domain.DateOnly(req.Date)).Before(now)
}

// mapSlotError translates slot validation failures into this use case's errors
func mapSlotError(err error) error {
	switch {
	case errors.Is(err, slot_validation.ErrSlotAlreadyBooked):
		return ErrSlotAlreadyBooked
	case errors.Is(err, slot_validation.ErrStaffUnavailable):
		return ErrStaffUnavailable
	case errors.Is(err, slot_validation.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: slot validation: %v", ErrInternal, err)
	}
}

// mapCouponError translates coupon application failures into this use case's errors
func mapCouponError(err error) error {
	switch {
	case errors.Is(err, apply_coupon.ErrCouponNotFound):
		return ErrCouponNotFound
	case errors.Is(err, apply_coupon.ErrCouponNotOwned):
		return ErrCouponNotOwned
	case errors.Is(err, apply_coupon.ErrCouponAlreadyUsed):
		return ErrCouponAlreadyUsed
	case errors.Is(err, apply_coupon.ErrCouponExpired):
		return ErrCouponExpired
	default:
		return fmt.Errorf("%w: apply coupon: %v", ErrInternal, err)
	}
}

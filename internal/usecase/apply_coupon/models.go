package apply_coupon

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

type Request struct {
	Actor         domain.Actor
	ReservationID int64
	CouponID      int64
}

type Response struct {
	ReservationID   int64
	CouponID        int64
	AppliedDiscount int
}

package apply_coupon

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	applyCoupon "github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
)

// ApplyCouponRequest HTTP request model
type ApplyCouponRequest struct {
	CouponID int64 `json:"couponId" validate:"required,gt=0"`
}

// ApplyCouponResponse HTTP response model
type ApplyCouponResponse struct {
	ReservationID   int64 `json:"reservationId"`
	CouponID        int64 `json:"couponId"`
	AppliedDiscount int   `json:"appliedDiscount"`
}

func (r *ApplyCouponRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) *applyCoupon.Request {
	return &applyCoupon.Request{
		Actor:         actor,
		ReservationID: reservationID,
		CouponID:      r.CouponID,
	}
}

func FromUseCaseResponse(resp *applyCoupon.Response) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		ReservationID:   resp.ReservationID,
		CouponID:        resp.CouponID,
		AppliedDiscount: resp.AppliedDiscount,
	}
}

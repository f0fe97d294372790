package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type CouponResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DiscountAmount int       `json:"discountAmount"`
	Used           bool      `json:"used"`
	ExpiryDate     string    `json:"expiryDate"` // "2025-08-01"
	ReservationID  *int64    `json:"reservationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}
	return &CouponResponse{
		ID:             c.ID,
		Name:           c.Name,
		DiscountAmount: c.DiscountAmount,
		Used:           c.Used,
		ExpiryDate:     c.ExpiryDate.Format(domain.DateFormat),
		ReservationID:  c.ReservationID,
		CreatedAt:      c.CreatedAt,
	}
}

func FromDomainCouponList(coupons []*domain.Coupon) *CouponListResponse {
	resp := &CouponListResponse{Coupons: make([]CouponResponse, 0, len(coupons))}
	for _, c := range coupons {
		resp.Coupons = append(resp.Coupons, *FromDomainCoupon(c))
	}
	return resp
}

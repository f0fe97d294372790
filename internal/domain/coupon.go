package domain

import "time"

// Coupon is a single-use discount owned by one user
type Coupon struct {
	ID             int64
	UserID         int64
	Name           string
	DiscountAmount int
	Used           bool
	ExpiryDate     time.Time
	ReservationID  *int64 // set when the coupon is consumed
	CreatedAt      time.Time
}

// NewCoupon builds an unused coupon expiring CouponValidityMonths after issuedAt
func NewCoupon(userID int64, name string, amount int, issuedAt time.Time) *Coupon {
	return &Coupon{
		UserID:         userID,
		Name:           name,
		DiscountAmount: amount,
		Used:           false,
		ExpiryDate:     DateOnly(issuedAt).AddDate(0, CouponValidityMonths, 0),
	}
}

func (c *Coupon) BelongsTo(userID int64) bool {
	return c.UserID == userID
}

// IsExpired compares calendar dates: a coupon is valid up to the day before its expiry date
func (c *Coupon) IsExpired(now time.Time) bool {
	return !DateOnly(c.ExpiryDate).After(DateOnly(now))
}

// IsAvailable returns true if the coupon can still be applied
func (c *Coupon) IsAvailable(now time.Time) bool {
	return !c.Used && !c.IsExpired(now)
}

// DateOnly returns midnight of t's calendar day in time.Local.
// lib/pq decodes DATE columns as UTC midnight while request dates and the
// clock are local, so every calendar comparison goes through here.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

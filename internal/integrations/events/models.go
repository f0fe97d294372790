package events

import "time"

// Routing keys on the topic exchange
const (
	RoutingReservationBooked    = "reservation.booked"
	RoutingReservationCancelled = "reservation.cancelled"
	RoutingCouponIssued         = "coupon.issued"
)

type ReservationBooked struct {
	ReservationID   int64     `json:"reservationId"`
	CustomerID      int64     `json:"customerId"`
	StaffID         *int64    `json:"staffId,omitempty"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	Menu            string    `json:"menu"`
	AppliedDiscount int       `json:"appliedDiscount"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type ReservationCancelled struct {
	ReservationID int64     `json:"reservationId"`
	CustomerID    int64     `json:"customerId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type CouponIssued struct {
	CouponID   int64     `json:"couponId"`
	UserID     int64     `json:"userId"`
	Amount     int       `json:"amount"`
	Rule       string    `json:"rule"`
	ExpiryDate string    `json:"expiryDate"`
	OccurredAt time.Time `json:"occurredAt"`
}

package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type Request struct {
	Actor domain.Actor

	// CustomerID books on behalf of another user; nil books for the actor
	CustomerID *int64

	// StaffID is optional; reservations without staff skip slot checks
	StaffID  *int64
	Date     time.Time
	TimeSlot types.TimeString
	Menu     string
	CouponID *int64
}

type Response struct {
	Reservation *domain.Reservation
}

package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request replaces date, time and menu. A nil StaffID keeps the current staff member.
type Request struct {
	Actor         domain.Actor
	ReservationID int64
	StaffID       *int64
	Date          time.Time
	TimeSlot      types.TimeString
	Menu          string
}

type Response struct {
	Reservation *domain.Reservation
}

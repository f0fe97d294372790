package slot_validation

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request describes a proposed booking position
type Request struct {
	StaffID int64
	Date    time.Time
	Time    types.TimeString

	// ExcludeReservationID is the reservation being moved; it never collides with itself
	ExcludeReservationID *int64
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type Request struct {
	StaffID int64
	Date    time.Time
}

// Response lists free start times in ascending order.
// ShiftStart and ShiftEnd are nil when the staff member does not work that day.
type Response struct {
	StaffID    int64
	StaffName  string
	Date       time.Time
	ShiftStart *types.TimeString
	ShiftEnd   *types.TimeString
	Slots      []types.TimeString
}

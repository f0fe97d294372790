package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// generateSlots returns start times in [start, end) stepping by granularity minutes.
// A non-positive granularity yields nothing; a step past midnight ends the sequence.
func generateSlots(start, end types.TimeString, granularity int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if granularity <= 0 || start.Validate() != nil || end.Validate() != nil {
		return slots
	}

	current := start
	for current.IsBefore(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(granularity)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// subtractReserved drops slots that exactly match a reservation's time, keeping order.
// Reservations off the grid never match.
func subtractReserved(slots []types.TimeString, reservations []*domain.Reservation) []types.TimeString {
	taken := make(map[int]struct{}, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		taken[r.TimeSlot.Minutes()] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot.Minutes()]; ok {
			continue
		}
		free = append(free, slot)
	}

	return free
}

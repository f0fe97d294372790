package statistics

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// countByMenu counts active reservations in the period per menu text
func countByMenu(reservations []*domain.Reservation, period domain.StatisticsPeriod) map[string]int {
	counts := make(map[string]int)
	for _, r := range reservations {
		if counted(r, period) {
			counts[r.Menu]++
		}
	}
	return counts
}

// countByStaff counts active reservations in the period per staff name.
// Reservations without staff are skipped.
func countByStaff(reservations []*domain.Reservation, period domain.StatisticsPeriod) map[string]int {
	counts := make(map[string]int)
	for _, r := range reservations {
		if r.StaffID == nil || !counted(r, period) {
			continue
		}
		counts[staffLabel(r)]++
	}
	return counts
}

func countTotal(reservations []*domain.Reservation, period domain.StatisticsPeriod) int {
	total := 0
	for _, r := range reservations {
		if counted(r, period) {
			total++
		}
	}
	return total
}

func counted(r *domain.Reservation, period domain.StatisticsPeriod) bool {
	return r.IsActive() && period.Contains(r.ReservationDate)
}

func staffLabel(r *domain.Reservation) string {
	if r.StaffName != nil && *r.StaffName != "" {
		return *r.StaffName
	}
	return fmt.Sprintf("staff #%d", *r.StaffID)
}

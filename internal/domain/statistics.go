package domain

import "time"

// StatisticsPeriod is an inclusive date range
type StatisticsPeriod struct {
	From time.Time
	To   time.Time
}

// DefaultStatisticsPeriod returns [today - 1 month, today]
func DefaultStatisticsPeriod(now time.Time) StatisticsPeriod {
	today := DateOnly(now)
	return StatisticsPeriod{
		From: today.AddDate(0, -DefaultStatisticsPeriodMonths, 0),
		To:   today,
	}
}

// Contains reports whether d falls within the period, bounds included
func (p StatisticsPeriod) Contains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(p.From)) && !day.After(DateOnly(p.To))
}

// ReservationStatistics holds per-menu and per-staff counts of active reservations
type ReservationStatistics struct {
	Period  StatisticsPeriod
	ByMenu  map[string]int
	ByStaff map[string]int
	Total   int
}

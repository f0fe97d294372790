package models

import (
	"cmp"
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// GetStatisticsRequest selects the period; nil bounds fall back to the default period
type GetStatisticsRequest struct {
	Actor domain.Actor
	From  *time.Time
	To    *time.Time
}

type StatisticsResponse struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Total   int            `json:"total"`
	ByMenu  map[string]int `json:"byMenu"`
	ByStaff map[string]int `json:"byStaff"`
}

// CountRow is one line of a rendered report
type CountRow struct {
	Name  string
	Count int
}

func FromDomainStatistics(s *domain.ReservationStatistics) *StatisticsResponse {
	return &StatisticsResponse{
		From:    s.Period.From.Format(domain.DateFormat),
		To:      s.Period.To.Format(domain.DateFormat),
		Total:   s.Total,
		ByMenu:  s.ByMenu,
		ByStaff: s.ByStaff,
	}
}

// MenuRows returns ByMenu ordered by count desc, then name
func (r *StatisticsResponse) MenuRows() []CountRow {
	return sortedRows(r.ByMenu)
}

// StaffRows returns ByStaff ordered by count desc, then name
func (r *StatisticsResponse) StaffRows() []CountRow {
	return sortedRows(r.ByStaff)
}

func sortedRows(counts map[string]int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, CountRow{Name: name, Count: count})
	}
	slices.SortFunc(rows, func(a, b CountRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return rows
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UpsertShiftRequest declares the working window of a staff member for one date
type UpsertShiftRequest struct {
	Actor     domain.Actor
	StaffID   *int64 // defaults to the actor
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ListShiftsRequest filters shifts; nil fields are not constrained
type ListShiftsRequest struct {
	StaffID *int64
	From    *time.Time
	To      *time.Time
}

type ShiftResponse struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffId"`
	Date      string    `json:"date"`      // "2025-05-10"
	StartTime string    `json:"startTime"` // "09:00"
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// ToDomainFilter converts the request into a repository filter
func (r *ListShiftsRequest) ToDomainFilter() domain.ShiftsFilter {
	filter := domain.ShiftsFilter{StaffID: r.StaffID}
	if r.From != nil {
		from := domain.DateOnly(*r.From)
		filter.StartDate = &from
	}
	if r.To != nil {
		to := domain.DateOnly(*r.To)
		filter.EndDate = &to
	}
	return filter
}

func FromDomainShift(s *domain.Shift) *ShiftResponse {
	if s == nil {
		return nil
	}
	return &ShiftResponse{
		ID:        s.ID,
		StaffID:   s.StaffID,
		Date:      s.ShiftDate.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	resp := &ShiftListResponse{Shifts: make([]ShiftResponse, 0, len(shifts))}
	for _, s := range shifts {
		resp.Shifts = append(resp.Shifts, *FromDomainShift(s))
	}
	return resp
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ListRangeRequest selects reservations of every customer between two dates, bounds included
type ListRangeRequest struct {
	Actor domain.Actor
	From  time.Time
	To    time.Time
}

// ListStaffRequest selects the calling staff member's reservations, optionally for one date
type ListStaffRequest struct {
	Actor domain.Actor
	Date  *time.Time
}

type ReservationResponse struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customerId"`
	StaffID         *int64    `json:"staffId,omitempty"`
	StaffName       *string   `json:"staffName,omitempty"`
	Date            string    `json:"date"`     // "2025-05-10"
	TimeSlot        string    `json:"timeSlot"` // "10:30"
	Menu            string    `json:"menu"`
	Status          string    `json:"status"`
	AppliedDiscount int       `json:"appliedDiscount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DashboardResponse is the role-dependent landing view
type DashboardResponse struct {
	Role         string                `json:"role"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	Reservations []ReservationResponse `json:"reservations"`
}

func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		StaffID:         r.StaffID,
		StaffName:       r.StaffName,
		Date:            r.ReservationDate.Format(domain.DateFormat),
		TimeSlot:        r.TimeSlot.String(),
		Menu:            r.Menu,
		Status:          string(r.Status),
		AppliedDiscount: r.AppliedDiscount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	return &ReservationListResponse{Reservations: toResponses(reservations)}
}

func toResponses(reservations []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return result
}

func NewDashboardResponse(role domain.Role, from, to time.Time, reservations []*domain.Reservation) *DashboardResponse {
	resp := &DashboardResponse{
		Role:         string(role),
		Reservations: toResponses(reservations),
	}
	if !from.IsZero() {
		resp.From = from.Format(domain.DateFormat)
	}
	if !to.IsZero() {
		resp.To = to.Format(domain.DateFormat)
	}
	return resp
}

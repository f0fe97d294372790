package create_reservation

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reservationModels "github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerID *int64 `json:"customerId,omitempty" validate:"omitempty,gt=0"`
	StaffID    *int64 `json:"staffId,omitempty" validate:"omitempty,gt=0"`
	Date       string `json:"date" validate:"required,isodate"`
	TimeSlot   string `json:"timeSlot" validate:"required,timeofday"`
	Menu       string `json:"menu" validate:"required,max=255"`
	CouponID   *int64 `json:"couponId,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreateReservationRequest) ToUseCaseRequest(actor domain.Actor) (*createReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Actor:      actor,
		CustomerID: r.CustomerID,
		StaffID:    r.StaffID,
		Date:       date,
		TimeSlot:   slot,
		Menu:       r.Menu,
		CouponID:   r.CouponID,
	}, nil
}

func FromUseCaseResponse(resp *createReservation.Response) *reservationModels.ReservationResponse {
	return reservationModels.FromDomainReservation(resp.Reservation)
}

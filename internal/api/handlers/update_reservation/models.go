package update_reservation

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reservationModels "github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
	updateReservation "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UpdateReservationRequest HTTP request model; omitted staffId keeps the current staff member
type UpdateReservationRequest struct {
	StaffID  *int64 `json:"staffId,omitempty" validate:"omitempty,gt=0"`
	Date     string `json:"date" validate:"required,isodate"`
	TimeSlot string `json:"timeSlot" validate:"required,timeofday"`
	Menu     string `json:"menu" validate:"required,max=255"`
}

func (r *UpdateReservationRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) (*updateReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		Actor:         actor,
		ReservationID: reservationID,
		StaffID:       r.StaffID,
		Date:          date,
		TimeSlot:      slot,
		Menu:          r.Menu,
	}, nil
}

func FromUseCaseResponse(resp *updateReservation.Response) *reservationModels.ReservationResponse {
	return reservationModels.FromDomainReservation(resp.Reservation)
}

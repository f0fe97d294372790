package upsert_shift

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UpsertShiftRequest HTTP request model; staffId defaults to the caller
type UpsertShiftRequest struct {
	StaffID   *int64 `json:"staffId,omitempty" validate:"omitempty,gt=0"`
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,timeofday"`
	EndTime   string `json:"endTime" validate:"required,timeofday"`
}

func (r *UpsertShiftRequest) ToServiceRequest(actor domain.Actor) (*models.UpsertShiftRequest, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.UpsertShiftRequest{
		Actor:     actor,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

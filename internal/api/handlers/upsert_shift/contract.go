package upsert_shift

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts/models"
)

type ShiftService interface {
	Upsert(ctx context.Context, req *models.UpsertShiftRequest) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

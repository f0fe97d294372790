package slot_validation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ReservationRepository looks up reservations occupying a slot
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ShiftRepository provides the staff member's working window for a date
type ShiftRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*domain.Shift, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

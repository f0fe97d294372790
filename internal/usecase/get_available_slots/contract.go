package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ReservationRepository lists reservations occupying slots
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

type ShiftRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*domain.Shift, error)
}

// UserRepository resolves the staff member
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package shifts

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ShiftRepository stores working windows
type ShiftRepository interface {
	Upsert(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	GetByFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository is used to check that the shift owner is a staff member
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

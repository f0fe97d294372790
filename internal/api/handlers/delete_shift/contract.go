package delete_shift

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type ShiftService interface {
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

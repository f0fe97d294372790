package list_staff

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/users/models"
)

type UserService interface {
	ListStaff(ctx context.Context) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

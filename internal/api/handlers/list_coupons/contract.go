package list_coupons

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/coupons/models"
)

type CouponService interface {
	ListAvailable(ctx context.Context, actor domain.Actor) (*models.CouponListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package issue_coupon

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
}

// SurveyCounter returns the user's lifetime number of survey responses
type SurveyCounter interface {
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// Coin is the random source of the appreciation rule
type Coin interface {
	Heads() bool
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package submit_survey

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/issue_coupon"
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type SurveyRepository interface {
	Create(ctx context.Context, response *domain.SurveyResponse) (*domain.SurveyResponse, error)
	ExistsByReservation(ctx context.Context, reservationID int64) (bool, error)
}

// CouponIssuer runs the issuance rules for the user
type CouponIssuer interface {
	Execute(ctx context.Context, req *issue_coupon.Request) (*issue_coupon.Response, error)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishCouponIssued(ctx context.Context, event events.CouponIssued) error
}

type Metrics interface {
	IncCouponIssued(rule string)
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

package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/slot_validation"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SlotValidator runs the double-booking and shift-containment checks
type SlotValidator interface {
	Validate(ctx context.Context, req *slot_validation.Request) error
}

// CouponApplier applies a coupon inside the booking transaction
type CouponApplier interface {
	Execute(ctx context.Context, req *apply_coupon.Request) (*apply_coupon.Response, error)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishReservationBooked(ctx context.Context, event events.ReservationBooked) error
}

type Metrics interface {
	IncReservation(event string)
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

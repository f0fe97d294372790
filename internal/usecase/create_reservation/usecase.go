package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerrors"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/slot_validation"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const metricEventBooked = "booked"

// UseCase creates a reservation, optionally paid down with a coupon
type UseCase struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	slotValidator   SlotValidator
	couponApplier   CouponApplier
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	slotValidator SlotValidator,
	couponApplier CouponApplier,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		slotValidator:   slotValidator,
		couponApplier:   couponApplier,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the slot and writes the reservation in one serializable transaction.
// The partial unique index on active slots rejects a concurrent winner that the pre-check missed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: actor=%d, staff=%d, date=%s, time=%s",
		req.Actor.UserID, ptr.Value(req.StaffID), req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)

	if isInPast(req, uc.timeProvider.Now()) {
		return nil, ErrReservationInPast
	}

	// 2. Who the reservation is for
	customerID := req.Actor.UserID
	if req.CustomerID != nil && *req.CustomerID != req.Actor.UserID {
		if !req.Actor.Role.CanBookForOthers() {
			uc.logger.Warn("CreateReservation: user=%d (%s) may not book for user=%d",
				req.Actor.UserID, req.Actor.Role, *req.CustomerID)
			return nil, ErrAccessDenied
		}
		customerID = *req.CustomerID

		if _, err := uc.userRepo.GetByID(ctx, customerID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("CreateReservation: failed to get customer id=%d: %v", customerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
	}

	// 3. Staff must be a staff member
	var staffName *string
	if req.StaffID != nil {
		staff, err := uc.userRepo.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsStaff() {
			uc.logger.Warn("CreateReservation: user id=%d is not staff", staff.ID)
			return nil, ErrStaffNotFound
		}
		staffName = &staff.Name
	}

	var result *domain.Reservation

	// 4. Validate and write atomically
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.StaffID != nil {
			err := uc.slotValidator.Validate(txCtx, &slot_validation.Request{
				StaffID: *req.StaffID,
				Date:    date,
				Time:    req.TimeSlot,
			})
			if err != nil {
				return mapSlotError(err)
			}
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID:      customerID,
			StaffID:         req.StaffID,
			ReservationDate: date,
			TimeSlot:        req.TimeSlot,
			Menu:            strings.TrimSpace(req.Menu),
			Status:          domain.StatusBooked,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		if req.CouponID != nil {
			applied, err := uc.couponApplier.Execute(txCtx, &apply_coupon.Request{
				Actor:         req.Actor,
				ReservationID: created.ID,
				CouponID:      *req.CouponID,
			})
			if err != nil {
				return mapCouponError(err)
			}
			created.AppliedDiscount = applied.AppliedDiscount
		}

		result = created
		return nil
	})

	if err != nil {
		uc.logger.Warn("CreateReservation: not created: %v", err)
		// A concurrent booking took the slot and our transaction lost at commit
		if pgerrors.IsSerializationFailure(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	result.StaffName = staffName
	uc.metrics.IncReservation(metricEventBooked)
	uc.logger.Info("CreateReservation: created reservation id=%d, discount=%d", result.ID, result.AppliedDiscount)

	// 5. Notify after commit; delivery failures do not undo the booking
	if err := uc.publisher.PublishReservationBooked(ctx, bookedEvent(result)); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for reservation id=%d: %v", result.ID, err)
	}

	return &Response{Reservation: result}, nil
}

func bookedEvent(r *domain.Reservation) events.ReservationBooked {
	return events.ReservationBooked{
		ReservationID:   r.ID,
		CustomerID:      r.CustomerID,
		StaffID:         r.StaffID,
		Date:            r.ReservationDate.Format(domain.DateFormat),
		TimeSlot:        r.TimeSlot.String(),
		Menu:            r.Menu,
		AppliedDiscount: r.AppliedDiscount,
		OccurredAt:      r.CreatedAt,
	}
}

package apply_coupon

import (
	"context"
	"errors"
	"fmt"

	couponRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/coupon"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
)

// UseCase applies a coupon to a reservation.
// The reservation discount and the coupon's used flag change in one transaction or not at all.
type UseCase struct {
	reservationRepo ReservationRepository
	couponRepo      CouponRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	couponRepo CouponRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		couponRepo:      couponRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute may run inside a caller's transaction, in which case it joins it
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyCoupon: user=%d, reservation=%d, coupon=%d", req.Actor.UserID, req.ReservationID, req.CouponID)

	if req.ReservationID <= 0 || req.CouponID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and couponID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var response *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Reservation, locked
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("ApplyCoupon: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !req.Actor.Owns(reservation.CustomerID) && !req.Actor.Role.CanManageReservations() {
			uc.logger.Warn("ApplyCoupon: user=%d does not own reservation id=%d", req.Actor.UserID, reservation.ID)
			return ErrAccessDenied
		}
		if !reservation.IsActive() {
			return ErrReservationNotActive
		}

		// 2. Coupon, locked
		coupon, err := uc.couponRepo.GetByID(txCtx, req.CouponID)
		if err != nil {
			if errors.Is(err, couponRepo.ErrCouponNotFound) {
				return ErrCouponNotFound
			}
			uc.logger.Error("ApplyCoupon: failed to get coupon id=%d: %v", req.CouponID, err)
			return fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
		}

		// 3. Ownership, single use, one discount per reservation.
		// Only the coupon's owner spends it, and only on their own reservation.
		if !coupon.BelongsTo(req.Actor.UserID) || !coupon.BelongsTo(reservation.CustomerID) {
			uc.logger.Warn("ApplyCoupon: coupon id=%d belongs to user=%d, applied by user=%d to customer=%d",
				coupon.ID, coupon.UserID, req.Actor.UserID, reservation.CustomerID)
			return ErrCouponNotOwned
		}
		if coupon.Used {
			return ErrCouponAlreadyUsed
		}
		if coupon.IsExpired(now) {
			return ErrCouponExpired
		}
		if reservation.HasDiscount() {
			return ErrDiscountAlreadyApplied
		}

		// 4. Both writes are conditional, so a concurrent apply loses cleanly
		if err := uc.reservationRepo.SetDiscount(txCtx, reservation.ID, coupon.DiscountAmount); err != nil {
			if errors.Is(err, reservationRepo.ErrDiscountAlreadySet) {
				return ErrDiscountAlreadyApplied
			}
			uc.logger.Error("ApplyCoupon: failed to set discount: %v", err)
			return fmt.Errorf("%w: failed to set discount: %v", ErrInternal, err)
		}

		if err := uc.couponRepo.MarkUsed(txCtx, coupon.ID, reservation.ID); err != nil {
			if errors.Is(err, couponRepo.ErrCouponAlreadyUsed) {
				return ErrCouponAlreadyUsed
			}
			uc.logger.Error("ApplyCoupon: failed to mark coupon used: %v", err)
			return fmt.Errorf("%w: failed to mark coupon used: %v", ErrInternal, err)
		}

		response = &Response{
			ReservationID:   reservation.ID,
			CouponID:        coupon.ID,
			AppliedDiscount: coupon.DiscountAmount,
		}
		return nil
	})

	if err != nil {
		uc.logger.Warn("ApplyCoupon: coupon=%d not applied to reservation=%d: %v", req.CouponID, req.ReservationID, err)
		return nil, err
	}

	uc.logger.Info("ApplyCoupon: applied %d to reservation id=%d", response.AppliedDiscount, response.ReservationID)
	return response, nil
}

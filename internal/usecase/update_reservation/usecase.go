package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerrors"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/slot_validation"
)

// UseCase moves a reservation to a new date, time, staff member or menu
type UseCase struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	slotValidator   SlotValidator
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	slotValidator SlotValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		slotValidator:   slotValidator,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute re-validates the target slot excluding the reservation itself,
// so keeping the current slot is always allowed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: actor=%d, reservation=%d, date=%s, time=%s",
		req.Actor.UserID, req.ReservationID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)

	if req.TimeSlot.On(date).Before(uc.timeProvider.Now()) {
		return nil, ErrReservationInPast
	}

	// 2. New staff member, if any
	var newStaff *domain.User
	if req.StaffID != nil {
		staff, err := uc.userRepo.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsStaff() {
			return nil, ErrStaffNotFound
		}
		newStaff = staff
	}

	var result *domain.Reservation

	// 3. Lock, check, write
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if reservation.IsDeleted() {
			return ErrReservationNotFound
		}
		if !req.Actor.Owns(reservation.CustomerID) && !req.Actor.Role.CanManageReservations() {
			uc.logger.Warn("UpdateReservation: user=%d may not edit reservation id=%d", req.Actor.UserID, reservation.ID)
			return ErrAccessDenied
		}
		if !reservation.CanBeUpdated() {
			return ErrReservationNotActive
		}

		if newStaff != nil {
			reservation.StaffID = &newStaff.ID
			reservation.StaffName = &newStaff.Name
		}
		reservation.ReservationDate = date
		reservation.TimeSlot = req.TimeSlot
		reservation.Menu = strings.TrimSpace(req.Menu)

		if reservation.StaffID != nil {
			err := uc.slotValidator.Validate(txCtx, &slot_validation.Request{
				StaffID:              *reservation.StaffID,
				Date:                 date,
				Time:                 req.TimeSlot,
				ExcludeReservationID: &reservation.ID,
			})
			if err != nil {
				return mapSlotError(err)
			}
		}

		updated, err := uc.reservationRepo.Update(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		uc.logger.Warn("UpdateReservation: reservation id=%d not updated: %v", req.ReservationID, err)
		// A concurrent writer took the slot and our transaction lost at commit
		if pgerrors.IsSerializationFailure(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d", result.ID)
	return &Response{Reservation: result}, nil
}

func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot: %v", ErrInvalidInput, err)
	}

	menu := strings.TrimSpace(req.Menu)
	if menu == "" {
		return fmt.Errorf("%w: menu is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(menu) > domain.MaxMenuLength {
		return fmt.Errorf("%w: menu is longer than %d characters", ErrInvalidInput, domain.MaxMenuLength)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}

func mapSlotError(err error) error {
	switch {
	case errors.Is(err, slot_validation.ErrSlotAlreadyBooked):
		return ErrSlotAlreadyBooked
	case errors.Is(err, slot_validation.ErrStaffUnavailable):
		return ErrStaffUnavailable
	case errors.Is(err, slot_validation.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: slot validation: %v", ErrInternal, err)
	}
}

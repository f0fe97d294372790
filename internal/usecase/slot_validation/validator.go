package slot_validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
)

// Validator checks that a staff member can take a reservation at a given date and time.
// It only reads; callers write inside the same transaction after a successful check.
type Validator struct {
	reservationRepo ReservationRepository
	shiftRepo       ShiftRepository
	logger          Logger
}

func NewValidator(reservationRepo ReservationRepository, shiftRepo ShiftRepository, logger Logger) *Validator {
	return &Validator{
		reservationRepo: reservationRepo,
		shiftRepo:       shiftRepo,
		logger:          logger,
	}
}

// Validate applies, in order, the double-booking rule and the shift-containment rule
func (v *Validator) Validate(ctx context.Context, req *Request) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	date := domain.DateOnly(req.Date)

	// 1. Double booking
	filter := domain.ReservationsFilter{
		StaffID:   &req.StaffID,
		StartDate: &date,
		EndDate:   &date,
		TimeSlot:  &req.Time,
		ExcludeID: req.ExcludeReservationID,
		Statuses:  domain.ActiveStatuses,
	}

	taken, err := v.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		v.logger.Error("ValidateSlot: failed to get reservations for staff=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	if len(taken) > 0 {
		v.logger.Warn("ValidateSlot: staff=%d %s %s already booked by reservation id=%d",
			req.StaffID, date.Format(domain.DateFormat), req.Time, taken[0].ID)
		return ErrSlotAlreadyBooked
	}

	// 2. Shift containment
	shift, err := v.shiftRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			v.logger.Warn("ValidateSlot: staff=%d has no shift on %s", req.StaffID, date.Format(domain.DateFormat))
			return ErrStaffUnavailable
		}
		v.logger.Error("ValidateSlot: failed to get shift for staff=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}

	if !shift.Covers(req.Time) {
		v.logger.Warn("ValidateSlot: %s is outside shift %s-%s of staff=%d",
			req.Time, shift.StartTime, shift.EndTime, req.StaffID)
		return ErrStaffUnavailable
	}

	return nil
}

func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	return nil
}

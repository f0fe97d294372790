package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UseCase computes the free start times of a staff member on a date.
// Results are computed on every call.
type UseCase struct {
	reservationRepo ReservationRepository
	shiftRepo       ShiftRepository
	userRepo        UserRepository
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	shiftRepo ShiftRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		shiftRepo:       shiftRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s", req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Input
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := domain.DateOnly(req.Date)

	// 2. Staff must exist and be bookable
	staff, err := uc.userRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.IsStaff() {
		uc.logger.Warn("GetAvailableSlots: user id=%d has role %s", staff.ID, staff.Role)
		return nil, ErrStaffNotFound
	}

	response := &Response{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Date:      date,
	}

	// 3. No shift, no capacity
	shift, err := uc.shiftRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Info("GetAvailableSlots: staff=%d has no shift on %s", req.StaffID, date.Format(domain.DateFormat))
			response.Slots = []types.TimeString{}
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get shift: %v", err)
		return nil, fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}
	response.ShiftStart = ptr.Ptr(shift.StartTime)
	response.ShiftEnd = ptr.Ptr(shift.EndTime)

	// 4. Every grid position inside [start, end)
	slots := generateSlots(shift.StartTime, shift.EndTime, domain.SlotGranularityMinutes)

	// 5. Active reservations of the day
	reservations, err := uc.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{
		StaffID:   &req.StaffID,
		StartDate: &date,
		EndDate:   &date,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	response.Slots = subtractReserved(slots, reservations)

	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s, %d of %d slots free",
		req.StaffID, date.Format(domain.DateFormat), len(response.Slots), len(slots))

	return response, nil
}

package shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/service/shifts/models"
)

// Service manages staff working windows
type Service struct {
	shiftRepo ShiftRepository
	userRepo  UserRepository
	logger    Logger
}

func NewService(shiftRepo ShiftRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Upsert creates the shift for (staff, date) or replaces its window.
// Staff manage their own shifts, admins manage anyone's.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertShiftRequest) (*models.ShiftResponse, error) {
	staffID := req.Actor.UserID
	if req.StaffID != nil {
		staffID = *req.StaffID
	}

	s.logger.Info("Upsert: shift for staff=%d, date=%s, %s-%s by user=%d",
		staffID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Actor.UserID)

	// 1. Access
	if !req.Actor.Role.CanManageOwnShifts() {
		s.logger.Warn("Upsert: role %s may not manage shifts", req.Actor.Role)
		return nil, ErrAccessDenied
	}
	if !req.Actor.Owns(staffID) && !req.Actor.Role.CanManageAnyShift() {
		s.logger.Warn("Upsert: user=%d may not manage shifts of staff=%d", req.Actor.UserID, staffID)
		return nil, ErrAccessDenied
	}

	// 2. Time window
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	shift := &domain.Shift{
		StaffID:   staffID,
		ShiftDate: domain.DateOnly(req.Date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if !shift.HasValidRange() {
		s.logger.Warn("Upsert: invalid range %s-%s", req.StartTime, req.EndTime)
		return nil, ErrInvalidTimeRange
	}

	// 3. Target must be a staff member
	staff, err := s.userRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Upsert: failed to get user id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Upsert - user repository error: %v", ErrInternal, err)
	}
	if !staff.IsStaff() {
		s.logger.Warn("Upsert: user id=%d is not staff", staffID)
		return nil, ErrStaffNotFound
	}

	stored, err := s.shiftRepo.Upsert(ctx, shift)
	if err != nil {
		switch {
		case errors.Is(err, shiftRepo.ErrInvalidTimeRange):
			return nil, ErrInvalidTimeRange
		case errors.Is(err, shiftRepo.ErrStaffNotFound):
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: stored shift id=%d", stored.ID)
	return models.FromDomainShift(stored), nil
}

// Delete removes a shift. Existing reservations are left untouched.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: shift id=%d by user=%d", id, actor.UserID)

	if !actor.Role.CanManageOwnShifts() {
		return ErrAccessDenied
	}

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: repository error for shift id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !actor.Owns(shift.StaffID) && !actor.Role.CanManageAnyShift() {
		s.logger.Warn("Delete: user=%d may not delete shift id=%d of staff=%d", actor.UserID, id, shift.StaffID)
		return ErrAccessDenied
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: failed to delete shift id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: shift id=%d deleted", id)
	return nil
}

// List returns shifts ordered by date
func (s *Service) List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error) {
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	shifts, err := s.shiftRepo.GetByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShiftList(shifts), nil
}

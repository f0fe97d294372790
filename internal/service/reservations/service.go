package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
)

const (
	metricEventCancelled = "cancelled"
	metricEventDeleted   = "deleted"

	// dashboardWindowDays is how far the admin dashboard looks back and ahead
	dashboardWindowDays = 7
)

// Service covers reservation reads and the status transitions that need no slot checks
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID returns a reservation visible to the actor.
// Customers see their own, staff and admins see all. Deleted reservations are not found.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: reservation id=%d for user=%d", id, actor.UserID)

	reservation, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// ListMine returns the actor's own history, newest first, without deleted rows
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) (*models.ReservationListResponse, error) {
	s.logger.Info("ListMine: reservations of user=%d", actor.UserID)

	list, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{
		CustomerID: &actor.UserID,
		Statuses:   domain.VisibleStatuses,
	})
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// ListForStaff returns reservations assigned to the calling staff member
func (s *Service) ListForStaff(ctx context.Context, req *models.ListStaffRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListForStaff: reservations of staff=%d", req.Actor.UserID)

	if !req.Actor.Role.IsBookable() {
		s.logger.Warn("ListForStaff: user=%d is not staff", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	filter := domain.ReservationsFilter{
		StaffID:  &req.Actor.UserID,
		Statuses: domain.VisibleStatuses,
	}
	if req.Date != nil {
		day := domain.DateOnly(*req.Date)
		filter.StartDate, filter.EndDate = &day, &day
	}

	list, err := s.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListForStaff: repository error for staff=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: ListForStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// ListRange returns every visible reservation between two dates, bounds included. Admin only.
func (s *Service) ListRange(ctx context.Context, req *models.ListRangeRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListRange: %s to %s by user=%d",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Actor.UserID)

	if !req.Actor.Role.CanViewAllReservations() {
		s.logger.Warn("ListRange: access denied for user=%d", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	if from.After(to) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{
		StartDate: &from,
		EndDate:   &to,
		Statuses:  domain.VisibleStatuses,
	})
	if err != nil {
		s.logger.Error("ListRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRange - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// Dashboard returns the landing view for the actor's role:
// admins see every reservation within a week of today, staff see their own for today,
// customers see their full history.
func (s *Service) Dashboard(ctx context.Context, actor domain.Actor) (*models.DashboardResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())

	filter := domain.ReservationsFilter{Statuses: domain.VisibleStatuses}
	var from, to time.Time

	switch {
	case actor.Role.CanViewAllReservations():
		from = today.AddDate(0, 0, -dashboardWindowDays)
		to = today.AddDate(0, 0, dashboardWindowDays)
		filter.StartDate, filter.EndDate = &from, &to
	case actor.Role.IsBookable():
		from, to = today, today
		filter.StaffID = &actor.UserID
		filter.StartDate, filter.EndDate = &from, &to
	default:
		filter.CustomerID = &actor.UserID
	}

	list, err := s.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Dashboard: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	return models.NewDashboardResponse(actor.Role, from, to, list), nil
}

// Cancel moves a booked reservation to cancelled and frees its slot.
// Cancelling an already cancelled reservation changes nothing and succeeds.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: reservation id=%d by user=%d", id, actor.UserID)

	var (
		result  *domain.Reservation
		changed bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.getVisible(txCtx, actor, id)
		if err != nil {
			return err
		}

		if !reservation.CanBeCancelled() {
			s.logger.Info("Cancel: reservation id=%d already %s", id, reservation.Status)
			result = reservation
			return nil
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			s.logger.Error("Cancel: failed to update reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusCancelled
		result, changed = reservation, true
		return nil
	})

	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.IncReservation(metricEventCancelled)

		event := events.ReservationCancelled{
			ReservationID: result.ID,
			CustomerID:    result.CustomerID,
			OccurredAt:    s.timeProvider.Now(),
		}
		if err := s.publisher.PublishReservationCancelled(ctx, event); err != nil {
			s.logger.Warn("Cancel: failed to publish event for reservation id=%d: %v", id, err)
		}
	}

	s.logger.Info("Cancel: reservation id=%d is cancelled", id)
	return models.FromDomainReservation(result), nil
}

// Delete soft-deletes a booked reservation. The row is kept for statistics and surveys. Admin only.
// Cancelled reservations stay cancelled.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: reservation id=%d by user=%d", id, actor.UserID)

	if !actor.Role.CanDeleteReservations() {
		s.logger.Warn("Delete: access denied for user=%d", actor.UserID)
		return ErrAccessDenied
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.getVisible(txCtx, actor, id)
		if err != nil {
			return err
		}
		if !reservation.IsActive() {
			s.logger.Warn("Delete: reservation id=%d is %s", id, reservation.Status)
			return ErrReservationNotActive
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusDeleted); err != nil {
			s.logger.Error("Delete: failed to update reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.metrics.IncReservation(metricEventDeleted)
	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

func (s *Service) getVisible(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("failed to get reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if reservation.IsDeleted() {
		return nil, ErrReservationNotFound
	}

	if !actor.Owns(reservation.CustomerID) && !actor.Role.CanManageReservations() {
		s.logger.Warn("access denied for user=%d to reservation id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

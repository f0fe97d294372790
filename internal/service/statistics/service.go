package statistics

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/statistics/models"
)

// Service aggregates reservations for reporting
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Get counts active reservations per menu and per staff member over an inclusive date range.
// Missing bounds default to [today - 1 month, today].
func (s *Service) Get(ctx context.Context, req *models.GetStatisticsRequest) (*models.StatisticsResponse, error) {
	if !req.Actor.Role.CanViewStatistics() {
		s.logger.Warn("Get: access denied for user=%d (%s)", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	period := domain.DefaultStatisticsPeriod(s.timeProvider.Now())
	if req.From != nil {
		period.From = domain.DateOnly(*req.From)
	}
	if req.To != nil {
		period.To = domain.DateOnly(*req.To)
	}
	if period.From.After(period.To) {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidPeriod,
			period.From.Format(domain.DateFormat), period.To.Format(domain.DateFormat))
	}

	s.logger.Info("Get: statistics %s to %s for user=%d",
		period.From.Format(domain.DateFormat), period.To.Format(domain.DateFormat), req.Actor.UserID)

	list, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{
		StartDate: &period.From,
		EndDate:   &period.To,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	stats := &domain.ReservationStatistics{
		Period:  period,
		ByMenu:  countByMenu(list, period),
		ByStaff: countByStaff(list, period),
		Total:   countTotal(list, period),
	}

	return models.FromDomainStatistics(stats), nil
}

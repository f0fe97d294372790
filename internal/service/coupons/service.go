package coupons

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/coupons/models"
)

// Service lists the coupons a user can still apply
type Service struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(couponRepo CouponRepository, logger Logger) *Service {
	return &Service{
		couponRepo:   couponRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListAvailable returns the actor's unused coupons that expire after today, largest discount first
func (s *Service) ListAvailable(ctx context.Context, actor domain.Actor) (*models.CouponListResponse, error) {
	s.logger.Info("ListAvailable: coupons of user=%d", actor.UserID)

	coupons, err := s.couponRepo.GetAvailableByUser(ctx, actor.UserID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListAvailable: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCouponList(coupons), nil
}

package coupons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeCoupons struct {
	coupons []*domain.Coupon
	userID  int64
	today   time.Time
	err     error
}

func (f *fakeCoupons) GetAvailableByUser(_ context.Context, userID int64, today time.Time) ([]*domain.Coupon, error) {
	f.userID, f.today = userID, today
	return f.coupons, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestListAvailable(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeCoupons{coupons: []*domain.Coupon{
		{ID: 2, Name: domain.MilestoneCouponName, DiscountAmount: 300, ExpiryDate: time.Date(2025, 8, 10, 0, 0, 0, 0, time.Local)},
	}}
	svc := NewService(repo, logger.Nop())
	svc.timeProvider = fixedTime{now: now}

	resp, err := svc.ListAvailable(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleCustomer})

	require.NoError(t, err)
	require.Len(t, resp.Coupons, 1)
	assert.Equal(t, "2025-08-10", resp.Coupons[0].ExpiryDate)
	assert.Equal(t, int64(7), repo.userID)
	assert.Equal(t, now, repo.today)
}

func TestListAvailable_Empty(t *testing.T) {
	svc := NewService(&fakeCoupons{}, logger.Nop())

	resp, err := svc.ListAvailable(context.Background(), domain.Actor{UserID: 7})

	require.NoError(t, err)
	assert.NotNil(t, resp.Coupons)
	assert.Empty(t, resp.Coupons)
}

func TestListAvailable_RepositoryError(t *testing.T) {
	svc := NewService(&fakeCoupons{err: errors.New("boom")}, logger.Nop())

	_, err := svc.ListAvailable(context.Background(), domain.Actor{UserID: 7})

	assert.ErrorIs(t, err, ErrInternal)
}

package issue_coupon

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase decides whether a survey submission earns a coupon and mints it.
// It must run after the triggering response is stored, in the same transaction:
// the milestone count includes that response.
type UseCase struct {
	couponRepo   CouponRepository
	surveys      SurveyCounter
	coin         Coin
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(couponRepo CouponRepository, surveys SurveyCounter, coin Coin, logger Logger) *UseCase {
	return &UseCase{
		couponRepo:   couponRepo,
		surveys:      surveys,
		coin:         coin,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute applies the rules in order, first match wins:
// every MilestoneSurveyInterval-th response gets the milestone coupon,
// otherwise a coin toss decides the appreciation coupon.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	count, err := uc.surveys.CountByUser(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("IssueCoupon: failed to count surveys of user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to count surveys: %v", ErrInternal, err)
	}

	var (
		rule   Rule
		name   string
		amount int
	)

	switch {
	case count > 0 && count%domain.MilestoneSurveyInterval == 0:
		rule, name, amount = RuleMilestone, domain.MilestoneCouponName, domain.MilestoneCouponAmount
	case uc.coin.Heads():
		rule, name, amount = RuleAppreciation, domain.AppreciationCouponName, domain.AppreciationCouponAmount
	default:
		uc.logger.Info("IssueCoupon: user=%d, survey #%d, no coupon", req.UserID, count)
		return &Response{Issued: false, Rule: RuleNone}, nil
	}

	coupon, err := uc.couponRepo.Create(ctx, domain.NewCoupon(req.UserID, name, amount, uc.timeProvider.Now()))
	if err != nil {
		uc.logger.Error("IssueCoupon: failed to create %s coupon for user=%d: %v", rule, req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create coupon: %v", ErrInternal, err)
	}

	uc.logger.Info("IssueCoupon: user=%d, survey #%d, issued %s coupon id=%d amount=%d",
		req.UserID, count, rule, coupon.ID, coupon.DiscountAmount)

	return &Response{Issued: true, Rule: rule, Coupon: coupon}, nil
}

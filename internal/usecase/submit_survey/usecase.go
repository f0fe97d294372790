package submit_survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	surveyRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/survey"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/issue_coupon"
)

// UseCase records the post-visit survey and runs coupon issuance for it
type UseCase struct {
	reservationRepo ReservationRepository
	surveyRepo      SurveyRepository
	couponIssuer    CouponIssuer
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	surveyRepo SurveyRepository,
	couponIssuer CouponIssuer,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		surveyRepo:      surveyRepo,
		couponIssuer:    couponIssuer,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute stores the response and issues at most one coupon.
// Issuance runs exactly once per stored response, in the same transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitSurvey: user=%d, reservation=%d", req.Actor.UserID, req.ReservationID)

	// 1. Input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitSurvey: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var (
		survey *domain.SurveyResponse
		issued *issue_coupon.Response
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Reservation must be the caller's, booked and already started
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("SubmitSurvey: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if reservation.IsDeleted() {
			return ErrReservationNotFound
		}
		if !req.Actor.Owns(reservation.CustomerID) {
			uc.logger.Warn("SubmitSurvey: user=%d is not the customer of reservation id=%d", req.Actor.UserID, reservation.ID)
			return ErrAccessDenied
		}
		if !reservation.IsActive() {
			return ErrReservationNotEligible
		}
		if reservation.StartsAt().After(now) {
			return ErrReservationNotCompleted
		}

		// 3. One survey per reservation
		exists, err := uc.surveyRepo.ExistsByReservation(txCtx, reservation.ID)
		if err != nil {
			uc.logger.Error("SubmitSurvey: failed to check survey for reservation id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to check survey: %v", ErrInternal, err)
		}
		if exists {
			return ErrSurveyAlreadySubmitted
		}

		survey, err = uc.surveyRepo.Create(txCtx, &domain.SurveyResponse{
			UserID:        req.Actor.UserID,
			ReservationID: reservation.ID,
			StaffRating:   req.StaffRating,
			ServiceRating: req.ServiceRating,
			Comment:       normalizeComment(req.Comment),
		})
		if err != nil {
			if errors.Is(err, surveyRepo.ErrSurveyAlreadyExists) {
				return ErrSurveyAlreadySubmitted
			}
			uc.logger.Error("SubmitSurvey: failed to create survey: %v", err)
			return fmt.Errorf("%w: failed to create survey: %v", ErrInternal, err)
		}

		// 4. Coupon issuance sees the response just stored
		issued, err = uc.couponIssuer.Execute(txCtx, &issue_coupon.Request{UserID: req.Actor.UserID})
		if err != nil {
			uc.logger.Error("SubmitSurvey: coupon issuance failed: %v", err)
			return fmt.Errorf("%w: coupon issuance: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		uc.logger.Warn("SubmitSurvey: survey for reservation=%d not stored: %v", req.ReservationID, err)
		return nil, err
	}

	response := &Response{Survey: survey}

	if issued.Issued {
		response.CouponIssued = true
		response.Coupon = issued.Coupon
		uc.metrics.IncCouponIssued(string(issued.Rule))

		if err := uc.publisher.PublishCouponIssued(ctx, couponEvent(issued)); err != nil {
			uc.logger.Warn("SubmitSurvey: failed to publish coupon id=%d: %v", issued.Coupon.ID, err)
		}
	}

	uc.logger.Info("SubmitSurvey: stored survey id=%d, coupon issued=%t", survey.ID, response.CouponIssued)
	return response, nil
}

func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if !domain.IsValidRating(req.StaffRating) {
		return fmt.Errorf("%w: staffRating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if !domain.IsValidRating(req.ServiceRating) {
		return fmt.Errorf("%w: serviceRating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}

// normalizeComment stores blank comments as NULL
func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func couponEvent(issued *issue_coupon.Response) events.CouponIssued {
	return events.CouponIssued{
		CouponID:   issued.Coupon.ID,
		UserID:     issued.Coupon.UserID,
		Amount:     issued.Coupon.DiscountAmount,
		Rule:       string(issued.Rule),
		ExpiryDate: issued.Coupon.ExpiryDate.Format(domain.DateFormat),
		OccurredAt: issued.Coupon.CreatedAt,
	}
}

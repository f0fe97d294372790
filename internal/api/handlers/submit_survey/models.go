package submit_survey

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	couponModels "github.com/m04kA/SMC-SalonBooking/internal/service/coupons/models"
	surveyModels "github.com/m04kA/SMC-SalonBooking/internal/service/surveys/models"
	submitSurvey "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_survey"
)

// SubmitSurveyRequest HTTP request model
type SubmitSurveyRequest struct {
	StaffRating   int     `json:"staffRating" validate:"required,min=1,max=5"`
	ServiceRating int     `json:"serviceRating" validate:"required,min=1,max=5"`
	Comment       *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

// SubmitSurveyResponse HTTP response model; coupon is present only when one was issued
type SubmitSurveyResponse struct {
	Survey       *surveyModels.SurveyResponse `json:"survey"`
	CouponIssued bool                         `json:"couponIssued"`
	Coupon       *couponModels.CouponResponse `json:"coupon,omitempty"`
}

func (r *SubmitSurveyRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) *submitSurvey.Request {
	return &submitSurvey.Request{
		Actor:         actor,
		ReservationID: reservationID,
		StaffRating:   r.StaffRating,
		ServiceRating: r.ServiceRating,
		Comment:       r.Comment,
	}
}

func FromUseCaseResponse(resp *submitSurvey.Response) *SubmitSurveyResponse {
	return &SubmitSurveyResponse{
		Survey:       surveyModels.FromDomainSurvey(resp.Survey),
		CouponIssued: resp.CouponIssued,
		Coupon:       couponModels.FromDomainCoupon(resp.Coupon),
	}
}

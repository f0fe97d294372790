package submit_survey

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

type Request struct {
	Actor         domain.Actor
	ReservationID int64
	StaffRating   int
	ServiceRating int
	Comment       *string
}

type Response struct {
	Survey       *domain.SurveyResponse
	CouponIssued bool
	Coupon       *domain.Coupon
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type SurveyResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ReservationID int64     `json:"reservationId"`
	StaffRating   int       `json:"staffRating"`
	ServiceRating int       `json:"serviceRating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SurveyListResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
}

func FromDomainSurvey(s *domain.SurveyResponse) *SurveyResponse {
	if s == nil {
		return nil
	}
	return &SurveyResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		ReservationID: s.ReservationID,
		StaffRating:   s.StaffRating,
		ServiceRating: s.ServiceRating,
		Comment:       s.Comment,
		CreatedAt:     s.CreatedAt,
	}
}

func FromDomainSurveyList(list []*domain.SurveyResponse) *SurveyListResponse {
	resp := &SurveyListResponse{Surveys: make([]SurveyResponse, 0, len(list))}
	for _, s := range list {
		resp.Surveys = append(resp.Surveys, *FromDomainSurvey(s))
	}
	return resp
}

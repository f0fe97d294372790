package surveys

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/surveys/models"
)

// Service exposes submitted surveys to administrators
type Service struct {
	surveyRepo SurveyRepository
	logger     Logger
}

func NewService(surveyRepo SurveyRepository, logger Logger) *Service {
	return &Service{
		surveyRepo: surveyRepo,
		logger:     logger,
	}
}

// List returns every survey response, newest first
func (s *Service) List(ctx context.Context, actor domain.Actor) (*models.SurveyListResponse, error) {
	if !actor.Role.CanViewSurveys() {
		s.logger.Warn("List: access denied for user=%d (%s)", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	list, err := s.surveyRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d surveys for user=%d", len(list), actor.UserID)
	return models.FromDomainSurveyList(list), nil
}

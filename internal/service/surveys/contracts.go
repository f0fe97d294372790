package surveys

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type SurveyRepository interface {
	GetAll(ctx context.Context) ([]*domain.SurveyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

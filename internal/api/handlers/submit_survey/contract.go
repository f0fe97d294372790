package submit_survey

import (
	"context"

	submitSurvey "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_survey"
)

type SubmitSurveyUseCase interface {
	Execute(ctx context.Context, req *submitSurvey.Request) (*submitSurvey.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

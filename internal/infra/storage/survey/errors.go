package survey

import "errors"

var (
	// ErrSurveyAlreadyExists is returned when the reservation already has a response
	ErrSurveyAlreadyExists = errors.New("survey.repository: survey already submitted for reservation")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("survey.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("survey.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("survey.repository: failed to scan row")
)

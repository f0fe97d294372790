package submit_survey

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist or is deleted
	ErrReservationNotFound = errors.New("submit_survey: reservation not found")

	// ErrReservationNotEligible is returned for cancelled reservations
	ErrReservationNotEligible = errors.New("submit_survey: reservation is not eligible for a survey")

	// ErrReservationNotCompleted is returned before the appointment has started
	ErrReservationNotCompleted = errors.New("submit_survey: reservation has not taken place yet")

	// ErrSurveyAlreadySubmitted is returned for the second survey of a reservation
	ErrSurveyAlreadySubmitted = errors.New("submit_survey: survey already submitted")

	// ErrAccessDenied is returned when the caller is not the reservation's customer
	ErrAccessDenied = errors.New("submit_survey: access denied")

	// ErrInvalidInput is returned for a malformed request
	ErrInvalidInput = errors.New("submit_survey: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("submit_survey: internal error")
)

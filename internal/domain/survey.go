package domain

import "time"

// SurveyResponse is the post-visit feedback for one reservation
type SurveyResponse struct {
	ID            int64
	UserID        int64
	ReservationID int64
	StaffRating   int
	ServiceRating int
	Comment       *string
	CreatedAt     time.Time
}

// IsValidRating reports whether r is within [MinRating, MaxRating]
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

package domain

// Scheduling
const (
	// SlotGranularityMinutes is the fixed step between bookable start times within a shift
	SlotGranularityMinutes = 30

	// ShiftEndToleranceMinutes is subtracted from the shift end when checking that a
	// requested time lies inside the shift: the closing instant itself is not bookable
	ShiftEndToleranceMinutes = 1
)

// Coupons
const (
	MilestoneSurveyInterval = 5

	MilestoneCouponAmount = 300
	MilestoneCouponName   = "5th-response guaranteed reward"

	AppreciationCouponAmount = 50
	AppreciationCouponName   = "survey appreciation"

	CouponValidityMonths = 3
)

// Surveys
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// Reservations
const (
	MaxMenuLength = 200
)

// Statistics
const (
	DefaultStatisticsPeriodMonths = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a slot and count in statistics
var ActiveStatuses = []ReservationStatus{
	StatusBooked,
}

// InactiveStatuses never block a slot
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusDeleted,
}

// VisibleStatuses are shown in reservation histories; soft-deleted rows are hidden
var VisibleStatuses = []ReservationStatus{
	StatusBooked,
	StatusCancelled,
}

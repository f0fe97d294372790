package issue_coupon

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Rule names which rule minted a coupon
type Rule string

const (
	RuleNone         Rule = ""
	RuleMilestone    Rule = "milestone"
	RuleAppreciation Rule = "appreciation"
)

type Request struct {
	UserID int64
}

type Response struct {
	Issued bool
	Rule   Rule
	Coupon *domain.Coupon
}

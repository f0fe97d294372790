package domain

import (
	"errors"
	"strings"
)

// Role is the closed set of user roles
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// legacyRolePrefix is accepted on input and stripped, never stored
const legacyRolePrefix = "ROLE_"

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole is the only place where role strings are interpreted.
// It accepts any case and an optional "ROLE_" prefix.
func ParseRole(raw string) (Role, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, legacyRolePrefix)

	switch r := Role(s); r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// IsValid reports whether r is already in canonical form
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsBookable reports whether users with this role take appointments
func (r Role) IsBookable() bool {
	return r == RoleStaff
}

// CanManageOwnShifts reports whether the role declares its own working windows
func (r Role) CanManageOwnShifts() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanManageAnyShift reports whether the role edits shifts of other staff members
func (r Role) CanManageAnyShift() bool {
	return r == RoleAdmin
}

// CanManageReservations reports whether the role may view, edit and cancel reservations it does not own
func (r Role) CanManageReservations() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanViewAllReservations reports whether the role lists reservations of every customer and staff member
func (r Role) CanViewAllReservations() bool {
	return r == RoleAdmin
}

func (r Role) CanDeleteReservations() bool {
	return r == RoleAdmin
}

// CanBookForOthers reports whether the role may create reservations on behalf of a customer
func (r Role) CanBookForOthers() bool {
	return r == RoleAdmin
}

func (r Role) CanViewStatistics() bool {
	return r == RoleAdmin
}

func (r Role) CanViewSurveys() bool {
	return r == RoleAdmin
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID int64
	Role   Role
}

// Owns reports whether the actor is the given user
func (a Actor) Owns(userID int64) bool {
	return a.UserID == userID
}

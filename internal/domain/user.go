package domain

import "time"

// User is a customer, a staff member or an administrator
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role

	// Optional external identities
	LineID   *string
	GoogleID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsStaff() bool {
	return u.Role.IsBookable()
}

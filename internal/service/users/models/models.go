package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// StaffResponse is the public view of a staff member
type StaffResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func FromDomainStaffList(users []*domain.User) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(users))}
	for _, u := range users {
		resp.Staff = append(resp.Staff, StaffResponse{ID: u.ID, Name: u.Name})
	}
	return resp
}

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/service/users/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/password"
)

const tokenType = "Bearer"

// Service handles registration, login and the public staff directory
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a customer account. Staff and admins are provisioned out of band.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Register: email=%s", email)

	name := strings.TrimSpace(req.Name)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, password.MinLength)
		}
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// Login verifies the password and issues an access token carrying the canonical role
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !password.Verify(user.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt,
		User:        *models.FromDomainUser(user),
	}, nil
}

// ListStaff returns every bookable staff member ordered by name
func (s *Service) ListStaff(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.userRepo.GetByRole(ctx, domain.RoleStaff)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(staff), nil
}

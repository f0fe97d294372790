package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/service/users/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/password"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	nextID  int64
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	result := make([]*domain.User, 0)
	for _, u := range f.byEmail {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakeTokens struct {
	userID int64
	role   string
}

func (f *fakeTokens) Issue(userID int64, role string) (string, time.Time, error) {
	f.userID, f.role = userID, role
	return "signed", time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), nil
}

func newService() (*Service, *fakeUsers, *fakeTokens) {
	users := newFakeUsers()
	tokens := &fakeTokens{}
	return NewService(users, tokens, logger.Nop()), users, tokens
}

func TestRegister(t *testing.T) {
	svc, users, _ := newService()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     " Hana ",
		Email:    "Hana@Example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "hana@example.com", resp.Email)
	assert.Equal(t, "CUSTOMER", resp.Role)
	stored := users.byEmail["hana@example.com"]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.True(t, password.Verify(stored.PasswordHash, "correct horse"))
}

func TestRegister_Rejections(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "Hana", Email: "hana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "Other", Email: "hana@example.com", Password: "another one"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "Ren", Email: "ren@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: " ", Email: "ren@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newService()
	registered, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "Hana", Email: "hana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "HANA@example.com", Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, "signed", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, registered.ID, tokens.userID)
	assert.Equal(t, "CUSTOMER", tokens.role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "Hana", Email: "hana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "hana@example.com", Password: "wrong horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	svc, users, _ := newService()
	users.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "hana@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestListStaff(t *testing.T) {
	svc, users, _ := newService()
	users.byEmail["aki@example.com"] = &domain.User{ID: 3, Name: "Aki", Role: domain.RoleStaff}
	users.byEmail["hana@example.com"] = &domain.User{ID: 7, Name: "Hana", Role: domain.RoleCustomer}

	resp, err := svc.ListStaff(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, "Aki", resp.Staff[0].Name)
}

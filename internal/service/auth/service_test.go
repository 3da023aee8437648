package auth

import (
	"context"
	"testing"

	"github.com/attendit/attendit-backend-go/internal/domain/auth"
	"github.com/attendit/attendit-backend-go/internal/domain/user"
	"github.com/attendit/attendit-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func testAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: []user.User{{
		ID:           "u1",
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}}}
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := testAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "admin@example.com", resp.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := testAuthService(t)

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	svc, _ := testAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _ := testAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_AfterLogout(t *testing.T) {
	svc, _ := testAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

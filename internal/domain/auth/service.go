package auth

import "context"

// AuthService defines authentication business logic. The rest of the system
// only ever sees the opaque user id carried in the access token.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

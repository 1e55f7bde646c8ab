package auth

import (
	"context"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// AuthService - registration, login, session renewal and profile resolution
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Profile(ctx context.Context, userID string) (user.UserResponse, error)
}

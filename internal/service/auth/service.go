package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/domain/auth"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepository user.UserRepository
	jwtService     jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register implements auth.AuthService. Email and employee ID uniqueness is
// enforced by the users table; the repository maps violations to
// ErrEmailExists / ErrEmployeeIDExists.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != nil {
		role = user.Role(*req.Role)
	}

	created, err := s.userRepository.Create(ctx, user.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		Position:     req.Position,
		ManagerID:    req.ManagerID,
		JoiningDate:  time.Now().UTC(),
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.tokenPair(created)
}

// Login implements auth.AuthService. A missing account and a wrong password
// both surface as ErrInvalidCredentials.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	u, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.tokenPair(u)
}

// Refresh implements auth.AuthService. Expired, forged and access tokens all
// surface as ErrInvalidToken; a deactivated account cannot renew its session.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	return s.tokenPair(u)
}

func (s *AuthServiceImpl) tokenPair(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         user.ToUserResponse(u),
	}, nil
}

// Profile implements auth.AuthService.
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}

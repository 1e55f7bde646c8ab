package user

import (
	"context"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// Get implements user.UserService. Staff can read any record; everyone else
// only their own.
func (s *UserServiceImpl) Get(ctx context.Context, caller user.Caller, id string) (user.UserResponse, error) {
	if err := user.AuthorizeStaffOrOwner(caller, id); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, caller user.Caller) ([]user.UserResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return user.ToUserResponses(users), nil
}

// ListByRole implements user.UserService.
func (s *UserServiceImpl) ListByRole(ctx context.Context, caller user.Caller, role user.Role) ([]user.UserResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return nil, err
	}

	switch role {
	case user.RoleAdmin, user.RoleHR, user.RoleEmployee:
	default:
		return nil, user.ErrUnknownRole
	}

	users, err := s.UserRepository.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	return user.ToUserResponses(users), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, caller user.Caller, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.Update(ctx, id, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(updated), nil
}

// Delete implements user.UserService. Removal is permanent; ledger rows that
// reference the user keep their foreign keys via ON DELETE behavior defined
// in the schema.
func (s *UserServiceImpl) Delete(ctx context.Context, caller user.Caller, id string) error {
	if err := user.Authorize(caller, user.RoleAdmin); err != nil {
		return err
	}

	return s.UserRepository.Delete(ctx, id)
}

package user

import "context"

// UserService - directory reads and administration
type UserService interface {
	Get(ctx context.Context, caller Caller, id string) (UserResponse, error)
	List(ctx context.Context, caller Caller) ([]UserResponse, error)
	ListByRole(ctx context.Context, caller Caller, role Role) ([]UserResponse, error)
	Update(ctx context.Context, caller Caller, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

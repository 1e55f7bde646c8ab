package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrEmployeeIDExists = errors.New("employee ID already registered")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrNotOwner         = errors.New("not the owner of this resource")
	ErrUnknownRole      = errors.New("unknown role")
)

package user

import (
	"time"

	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	EmployeeID  string    `json:"employee_id"`
	Department  string    `json:"department"`
	Position    string    `json:"position"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	ManagerName *string   `json:"manager_name,omitempty"`
	JoiningDate time.Time `json:"joining_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        u.Role,
		EmployeeID:  u.EmployeeID,
		Department:  u.Department,
		Position:    u.Position,
		ManagerID:   u.ManagerID,
		ManagerName: u.ManagerName,
		JoiningDate: u.JoiningDate,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses
}

type UpdateUserRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, hr, employee",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, user administration
	RoleHR       Role = "hr"       // Can approve leave, inspect tasks, view team data
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles lists every assignable role.
var ValidRoles = []string{string(RoleAdmin), string(RoleHR), string(RoleEmployee)}

// IsStaff reports whether the role carries cross-user visibility.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   string
	Department   string
	Position     string
	ManagerID    *string
	JoiningDate  time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join (for responses)
	ManagerName *string
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

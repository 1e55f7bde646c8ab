package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// Attendance entity: one record per (user, calendar day). The pair is
// protected by a unique index, which is what resolves concurrent check-ins.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckIn      time.Time
	CheckOut     *time.Time
	Status       Status
	WorkingHours float64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join (for team views)
	UserFirstName *string
	UserLastName  *string
	EmployeeID    *string
	Department    *string
}

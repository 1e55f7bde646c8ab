package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave types are stored as plain text and validated against this set; the
// set is open to extension without a schema change.
var ValidLeaveTypes = []string{
	"vacation", "sick", "personal", "emergency", "maternity", "paternity",
}

var DecidableStatuses = []string{string(StatusApproved), string(StatusRejected)}

// LeaveRequest entity
type LeaveRequest struct {
	ID        string
	UserID    string
	LeaveType string

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins (for responses)
	UserFirstName *string
	UserLastName  *string
	EmployeeID    *string
	Department    *string
	ApproverName  *string
}

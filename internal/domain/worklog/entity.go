package worklog

import "time"

type Productivity string

const (
	ProductivityLow    Productivity = "low"
	ProductivityMedium Productivity = "medium"
	ProductivityHigh   Productivity = "high"
)

var ValidProductivities = []string{
	string(ProductivityLow), string(ProductivityMedium), string(ProductivityHigh),
}

// WorkLog entity: one free-form daily report per (user, calendar day),
// protected by a unique index on the pair. TotalHours is self-reported and
// deliberately not reconciled against the sum of item hours.
type WorkLog struct {
	ID            string
	UserID        string
	Date          time.Time
	Blockers      *string
	Achievements  *string
	TomorrowsPlan *string
	TotalHours    float64
	Productivity  Productivity
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []WorkLogItem

	// Joins (for team views)
	UserFirstName *string
	UserLastName  *string
	EmployeeID    *string
	Department    *string
}

// WorkLogItem is one task-completion entry within a daily log. The task
// reference is optional; hours and description are required.
type WorkLogItem struct {
	ID          string
	WorkLogID   string
	TaskID      *string
	HoursWorked float64
	Description string
	Position    int

	// Joins (for responses)
	TaskTitle   *string
	TaskProject *string
}

package task

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

type InspectionStatus string

const (
	InspectionPending       InspectionStatus = "pending"
	InspectionPassed        InspectionStatus = "passed"
	InspectionFailed        InspectionStatus = "failed"
	InspectionNeedsRevision InspectionStatus = "needs-revision"
)

var (
	ValidPriorities = []string{
		string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityUrgent),
	}
	ValidStatuses = []string{
		string(StatusPending), string(StatusInProgress), string(StatusCompleted), string(StatusOnHold),
	}
	ValidInspectionStatuses = []string{
		string(InspectionPending), string(InspectionPassed), string(InspectionFailed), string(InspectionNeedsRevision),
	}
)

// Task entity. Status is owned by the assignee; the inspection sub-record is
// owned by admin/hr and moves independently of the task's own status.
type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	AssignedBy  string
	Project     string
	Priority    Priority
	Status      Status

	StartDate   time.Time
	DueDate     time.Time
	CompletedAt *time.Time

	EstimatedHours float64
	ActualHours    float64

	InspectionStatus InspectionStatus
	InspectedBy      *string
	InspectionNotes  *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins (for responses)
	AssigneeName       *string
	AssigneeEmployeeID *string
	AssigneeDepartment *string
	AssignerName       *string
	InspectorName      *string
}

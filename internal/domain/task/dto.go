package task

import (
	"time"

	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	AssignedTo     string  `json:"assigned_to"`
	Project        string  `json:"project"`
	Priority       *string `json:"priority,omitempty"`
	StartDate      string  `json:"start_date"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	}

	if validator.IsEmpty(r.Project) {
		errs = append(errs, validator.ValidationError{
			Field:   "project",
			Message: "project is required",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, ValidPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high, urgent",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	due, dueOK := validator.IsValidDate(r.DueDate)
	if !dueOK {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && dueOK && due.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must not be before start_date",
		})
	}

	if r.EstimatedHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimated_hours",
			Message: "estimated_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskStatusRequest struct {
	Status      string   `json:"status"`
	ActualHours *float64 `json:"actual_hours,omitempty"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, in-progress, completed, on-hold",
		})
	}

	if r.ActualHours != nil && *r.ActualHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_hours",
			Message: "actual_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InspectTaskRequest struct {
	InspectionStatus string  `json:"inspection_status"`
	InspectionNotes  *string `json:"inspection_notes,omitempty"`
}

func (r *InspectTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.InspectionStatus, ValidInspectionStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_status",
			Message: "inspection_status must be one of pending, passed, failed, needs-revision",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AssignedTo     string     `json:"assigned_to"`
	AssignedBy     string     `json:"assigned_by"`
	Project        string     `json:"project"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	StartDate      time.Time  `json:"start_date"`
	DueDate        time.Time  `json:"due_date"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`

	InspectionStatus InspectionStatus `json:"inspection_status"`
	InspectedBy      *string          `json:"inspected_by,omitempty"`
	InspectionNotes  *string          `json:"inspection_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	AssigneeName       *string `json:"assignee_name,omitempty"`
	AssigneeEmployeeID *string `json:"assignee_employee_id,omitempty"`
	AssigneeDepartment *string `json:"assignee_department,omitempty"`
	AssignerName       *string `json:"assigner_name,omitempty"`
	InspectorName      *string `json:"inspector_name,omitempty"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		AssignedTo:         t.AssignedTo,
		AssignedBy:         t.AssignedBy,
		Project:            t.Project,
		Priority:           t.Priority,
		Status:             t.Status,
		StartDate:          t.StartDate,
		DueDate:            t.DueDate,
		CompletedAt:        t.CompletedAt,
		EstimatedHours:     t.EstimatedHours,
		ActualHours:        t.ActualHours,
		InspectionStatus:   t.InspectionStatus,
		InspectedBy:        t.InspectedBy,
		InspectionNotes:    t.InspectionNotes,
		CreatedAt:          t.CreatedAt,
		AssigneeName:       t.AssigneeName,
		AssigneeEmployeeID: t.AssigneeEmployeeID,
		AssigneeDepartment: t.AssigneeDepartment,
		AssignerName:       t.AssignerName,
		InspectorName:      t.InspectorName,
	}
}

func ToResponses(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(t))
	}
	return responses
}

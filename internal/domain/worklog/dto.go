package worklog

import (
	"fmt"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

type WorkLogItemRequest struct {
	TaskID      *string `json:"task_id,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
	Description string  `json:"description"`
}

type SubmitWorkLogRequest struct {
	Date           string               `json:"date"`
	TasksCompleted []WorkLogItemRequest `json:"tasks_completed"`
	Blockers       *string              `json:"blockers,omitempty"`
	Achievements   *string              `json:"achievements,omitempty"`
	TomorrowsPlan  *string              `json:"tomorrows_plan,omitempty"`
	TotalHours     float64              `json:"total_hours"`
	Productivity   *string              `json:"productivity,omitempty"`
}

func (r *SubmitWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	for i, item := range r.TasksCompleted {
		if item.HoursWorked <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("tasks_completed[%d].hours_worked", i),
				Message: "hours_worked must be positive",
			})
		}
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("tasks_completed[%d].description", i),
				Message: "description is required",
			})
		}
	}

	if r.TotalHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours",
			Message: "total_hours must be positive",
		})
	}

	if r.Productivity != nil && !validator.IsInSlice(*r.Productivity, ValidProductivities) {
		errs = append(errs, validator.ValidationError{
			Field:   "productivity",
			Message: "productivity must be one of low, medium, high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkLogItemResponse struct {
	TaskID      *string `json:"task_id,omitempty"`
	TaskTitle   *string `json:"task_title,omitempty"`
	TaskProject *string `json:"task_project,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
	Description string  `json:"description"`
}

type WorkLogResponse struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Date           time.Time             `json:"date"`
	TasksCompleted []WorkLogItemResponse `json:"tasks_completed"`
	Blockers       *string               `json:"blockers,omitempty"`
	Achievements   *string               `json:"achievements,omitempty"`
	TomorrowsPlan  *string               `json:"tomorrows_plan,omitempty"`
	TotalHours     float64               `json:"total_hours"`
	Productivity   Productivity          `json:"productivity"`
	CreatedAt      time.Time             `json:"created_at"`

	UserFirstName *string `json:"user_first_name,omitempty"`
	UserLastName  *string `json:"user_last_name,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
	Department    *string `json:"department,omitempty"`
}

func ToResponse(w WorkLog) WorkLogResponse {
	items := make([]WorkLogItemResponse, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, WorkLogItemResponse{
			TaskID:      item.TaskID,
			TaskTitle:   item.TaskTitle,
			TaskProject: item.TaskProject,
			HoursWorked: item.HoursWorked,
			Description: item.Description,
		})
	}
	return WorkLogResponse{
		ID:             w.ID,
		UserID:         w.UserID,
		Date:           w.Date,
		TasksCompleted: items,
		Blockers:       w.Blockers,
		Achievements:   w.Achievements,
		TomorrowsPlan:  w.TomorrowsPlan,
		TotalHours:     w.TotalHours,
		Productivity:   w.Productivity,
		CreatedAt:      w.CreatedAt,
		UserFirstName:  w.UserFirstName,
		UserLastName:   w.UserLastName,
		EmployeeID:     w.EmployeeID,
		Department:     w.Department,
	}
}

func ToResponses(logs []WorkLog) []WorkLogResponse {
	responses := make([]WorkLogResponse, 0, len(logs))
	for _, w := range logs {
		responses = append(responses, ToResponse(w))
	}
	return responses
}

package leave

import (
	"time"

	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of vacation, sick, personal, emergency, maternity, paternity",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, DecidableStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	LeaveType       string     `json:"leave_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	UserFirstName *string `json:"user_first_name,omitempty"`
	UserLastName  *string `json:"user_last_name,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
	Department    *string `json:"department,omitempty"`
	ApproverName  *string `json:"approver_name,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		ApprovedBy:      l.ApprovedBy,
		ApprovedAt:      l.ApprovedAt,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
		UserFirstName:   l.UserFirstName,
		UserLastName:    l.UserLastName,
		EmployeeID:      l.EmployeeID,
		Department:      l.Department,
		ApproverName:    l.ApproverName,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(requests))
	for _, l := range requests {
		responses = append(responses, ToResponse(l))
	}
	return responses
}

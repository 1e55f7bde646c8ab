package response

import (
	"errors"
	"net/http"

	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/domain/auth"
	"github.com/nexoptima/ems-backend-go/internal/domain/leave"
	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, "Insufficient role for this operation")
	case errors.Is(err, user.ErrNotOwner):
		Forbidden(w, "Resource belongs to another user")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUnknownRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNoCheckIn):
		NotFound(w, "No check-in found for today")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Work log domain errors
	case errors.Is(err, worklog.ErrWorkLogExists):
		Conflict(w, "Work log already submitted for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

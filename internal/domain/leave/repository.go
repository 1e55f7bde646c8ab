package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByUser returns the user's requests newest first with approver joined.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	// ListPending returns pending requests newest first with applicant joined.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string, approvedAt time.Time, rejectionReason *string) (LeaveRequest, error)
}

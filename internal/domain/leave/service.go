package leave

import (
	"context"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// LeaveService - leave request lifecycle
type LeaveService interface {
	Apply(ctx context.Context, caller user.Caller, req ApplyLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, caller user.Caller) ([]LeaveResponse, error)
	ListPending(ctx context.Context, caller user.Caller) ([]LeaveResponse, error)
	SetStatus(ctx context.Context, caller user.Caller, leaveID string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}

package worklog

import (
	"context"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// WorkLogService - daily report ledger
type WorkLogService interface {
	Submit(ctx context.Context, caller user.Caller, req SubmitWorkLogRequest) (WorkLogResponse, error)
	ListMine(ctx context.Context, caller user.Caller, year int, month time.Month) ([]WorkLogResponse, error)
	ListForTeam(ctx context.Context, caller user.Caller, filter TeamFilter) ([]WorkLogResponse, error)
}

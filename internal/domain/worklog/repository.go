package worklog

import (
	"context"
	"time"
)

// TeamFilter narrows team listings by day and/or submitter; nil fields match
// everything.
type TeamFilter struct {
	Date   *time.Time
	UserID *string
}

// WorkLogRepository - interface for the work_logs and work_log_items tables
type WorkLogRepository interface {
	// Create inserts the log and its items in one transaction.
	Create(ctx context.Context, w WorkLog) (WorkLog, error)
	// ListByUserBetween returns the user's logs in [from, to) newest first
	// with task titles joined into the items.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]WorkLog, error)
	// ListForTeam returns logs matching the filter newest first with submitter
	// identity and task titles joined.
	ListForTeam(ctx context.Context, filter TeamFilter) ([]WorkLog, error)
}

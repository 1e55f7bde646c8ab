package dashboard

import (
	"context"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// DashboardService - read-only summaries over the ledgers
type DashboardService interface {
	// Stats branches by the caller's role: employees get counts scoped to
	// themselves, admin/hr get organization-wide counts.
	Stats(ctx context.Context, caller user.Caller) (interface{}, error)
	Analytics(ctx context.Context, caller user.Caller) (AnalyticsResponse, error)
}

package attendance

import (
	"context"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// AttendanceService - check-in/check-out ledger and its views
type AttendanceService interface {
	CheckIn(ctx context.Context, caller user.Caller) (AttendanceResponse, error)
	CheckOut(ctx context.Context, caller user.Caller) (AttendanceResponse, error)
	ListMine(ctx context.Context, caller user.Caller, year int, month time.Month) ([]AttendanceResponse, error)
	ListForDay(ctx context.Context, caller user.Caller, day time.Time) ([]AttendanceResponse, error)
}

package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	// GetByUserAndDate returns nil when no record exists for that day.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, workingHours float64) (Attendance, error)
	// ListByUserBetween returns records in [from, to) ascending by date.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)
	// ListBetween returns all records in [from, to) with user identity joined.
	ListBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)
}

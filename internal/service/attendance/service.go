package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
	}
}

// CheckIn implements attendance.AttendanceService. The friendly duplicate
// check below is racy on its own; the unique index on (user_id, date) is what
// actually guarantees one record per day, and the repository maps the losing
// insert to ErrAlreadyCheckedIn.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, caller user.Caller) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := dateutil.StartOfDay(now)

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, caller.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  caller.ID,
		Date:    today,
		CheckIn: now,
		Status:  attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Working hours are the
// raw fractional difference between check-out and check-in, no rounding.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, caller user.Caller) (attendance.AttendanceResponse, error) {
	now := time.Now().UTC()
	today := dateutil.StartOfDay(now)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, caller.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	workingHours := now.Sub(record.CheckIn).Hours()
	updated, err := s.AttendanceRepository.SetCheckOut(ctx, record.ID, now, workingHours)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, caller user.Caller, year int, month time.Month) ([]attendance.AttendanceResponse, error) {
	from, to := dateutil.MonthRange(year, month)

	records, err := s.AttendanceRepository.ListByUserBetween(ctx, caller.ID, from, to)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(records), nil
}

// ListForDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForDay(ctx context.Context, caller user.Caller, day time.Time) ([]attendance.AttendanceResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return nil, err
	}

	from := dateutil.StartOfDay(day)
	to := dateutil.NextDay(day)

	records, err := s.AttendanceRepository.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(records), nil
}

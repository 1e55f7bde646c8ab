package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, status, working_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	a.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		a.ID, a.UserID, a.Date, a.CheckIn, a.Status, a.WorkingHours, a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "attendances_user_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, status, working_hours, notes,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status,
		&a.WorkingHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &a, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut time.Time, workingHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, working_hours = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, date, check_in, check_out, status, working_hours, notes,
				  created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id, checkOut, workingHours).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status,
		&a.WorkingHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return a, nil
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, status, working_hours, notes,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status,
			&a.WorkingHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.status,
			   a.working_hours, a.notes, a.created_at, a.updated_at,
			   u.first_name, u.last_name, u.employee_id, u.department
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list team attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status,
			&a.WorkingHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
			&a.UserFirstName, &a.UserLastName, &a.EmployeeID, &a.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

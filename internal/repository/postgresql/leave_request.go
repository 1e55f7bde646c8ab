package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexoptima/ems-backend-go/internal/domain/leave"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.UserID, request.LeaveType, request.StartDate,
		request.EndDate, request.TotalDays, request.Reason, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, total_days, reason,
			   status, approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.TotalDays,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return l, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.total_days,
			   l.reason, l.status, l.approved_by, l.approved_at, l.rejection_reason,
			   l.created_at, l.updated_at,
			   a.first_name || ' ' || a.last_name AS approver_name
		FROM leave_requests l
		LEFT JOIN users a ON a.id = l.approved_by
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.TotalDays,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason,
			&l.CreatedAt, &l.UpdatedAt, &l.ApproverName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.total_days,
			   l.reason, l.status, l.approved_by, l.approved_at, l.rejection_reason,
			   l.created_at, l.updated_at,
			   u.first_name, u.last_name, u.employee_id, u.department
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.TotalDays,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason,
			&l.CreatedAt, &l.UpdatedAt,
			&l.UserFirstName, &l.UserLastName, &l.EmployeeID, &l.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending leave request: %w", err)
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string, approvedAt time.Time, rejectionReason *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4,
			rejection_reason = COALESCE($5, rejection_reason),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, leave_type, start_date, end_date, total_days, reason,
				  status, approved_by, approved_at, rejection_reason, created_at, updated_at
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status, approvedBy, approvedAt, rejectionReason).Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.TotalDays,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return l, nil
}

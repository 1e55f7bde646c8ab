package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type workLogRepositoryImpl struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

// Create implements worklog.WorkLogRepository. The log row and its items are
// written in one transaction so a half-written report never becomes visible.
func (r *workLogRepositoryImpl) Create(ctx context.Context, w worklog.WorkLog) (worklog.WorkLog, error) {
	w.ID = uuid.NewString()

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		logQuery := `
			INSERT INTO work_logs (id, user_id, date, blockers, achievements, tomorrows_plan, total_hours, productivity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`

		err := tx.QueryRow(ctx, logQuery,
			w.ID, w.UserID, w.Date, w.Blockers, w.Achievements,
			w.TomorrowsPlan, w.TotalHours, w.Productivity,
		).Scan(&w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, "work_logs_user_id_date_key") {
				return worklog.ErrWorkLogExists
			}
			return fmt.Errorf("failed to create work log: %w", err)
		}

		itemQuery := `
			INSERT INTO work_log_items (id, work_log_id, task_id, hours_worked, description, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`

		for i := range w.Items {
			w.Items[i].ID = uuid.NewString()
			w.Items[i].WorkLogID = w.ID
			w.Items[i].Position = i
			if _, err := tx.Exec(ctx, itemQuery,
				w.Items[i].ID, w.ID, w.Items[i].TaskID,
				w.Items[i].HoursWorked, w.Items[i].Description, i,
			); err != nil {
				return fmt.Errorf("failed to create work log item: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return worklog.WorkLog{}, err
	}

	return w, nil
}

// ListByUserBetween implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, blockers, achievements, tomorrows_plan,
			   total_hours, productivity, created_at, updated_at
		FROM work_logs
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanWorkLogs(rows, false)
	if err != nil {
		return nil, err
	}

	return r.attachItems(ctx, logs)
}

// ListForTeam implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListForTeam(ctx context.Context, filter worklog.TeamFilter) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.user_id, w.date, w.blockers, w.achievements, w.tomorrows_plan,
			   w.total_hours, w.productivity, w.created_at, w.updated_at,
			   u.first_name, u.last_name, u.employee_id, u.department
		FROM work_logs w
		JOIN users u ON u.id = w.user_id
		WHERE ($1::timestamptz IS NULL OR (w.date >= $1 AND w.date < $2))
		  AND ($3::text IS NULL OR w.user_id = $3)
		ORDER BY w.date DESC
	`

	var dayStart, dayEnd *time.Time
	if filter.Date != nil {
		start := *filter.Date
		end := start.AddDate(0, 0, 1)
		dayStart, dayEnd = &start, &end
	}

	rows, err := q.Query(ctx, query, dayStart, dayEnd, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team work logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanWorkLogs(rows, true)
	if err != nil {
		return nil, err
	}

	return r.attachItems(ctx, logs)
}

func scanWorkLogs(rows pgx.Rows, withUser bool) ([]worklog.WorkLog, error) {
	var logs []worklog.WorkLog
	for rows.Next() {
		var w worklog.WorkLog
		dest := []interface{}{
			&w.ID, &w.UserID, &w.Date, &w.Blockers, &w.Achievements,
			&w.TomorrowsPlan, &w.TotalHours, &w.Productivity, &w.CreatedAt, &w.UpdatedAt,
		}
		if withUser {
			dest = append(dest, &w.UserFirstName, &w.UserLastName, &w.EmployeeID, &w.Department)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		logs = append(logs, w)
	}
	return logs, rows.Err()
}

// attachItems loads the task-completion items for every listed log in one
// query, with task title/project joined for display.
func (r *workLogRepositoryImpl) attachItems(ctx context.Context, logs []worklog.WorkLog) ([]worklog.WorkLog, error) {
	if len(logs) == 0 {
		return logs, nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, 0, len(logs))
	index := make(map[string]int, len(logs))
	for i, w := range logs {
		ids = append(ids, w.ID)
		index[w.ID] = i
	}

	query := `
		SELECT i.id, i.work_log_id, i.task_id, i.hours_worked, i.description, i.position,
			   t.title, t.project
		FROM work_log_items i
		LEFT JOIN tasks t ON t.id = i.task_id
		WHERE i.work_log_id = ANY($1)
		ORDER BY i.work_log_id, i.position ASC
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list work log items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item worklog.WorkLogItem
		if err := rows.Scan(
			&item.ID, &item.WorkLogID, &item.TaskID, &item.HoursWorked,
			&item.Description, &item.Position, &item.TaskTitle, &item.TaskProject,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work log item: %w", err)
		}
		i := index[item.WorkLogID]
		logs[i].Items = append(logs[i].Items, item)
	}

	return logs, rows.Err()
}

package worklog

import (
	"context"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/pkg/dateutil"
)

type WorkLogServiceImpl struct {
	db *database.DB
	worklog.WorkLogRepository
}

func NewWorkLogService(db *database.DB, workLogRepository worklog.WorkLogRepository) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		db:                db,
		WorkLogRepository: workLogRepository,
	}
}

// Submit implements worklog.WorkLogService. One entry per user per day; the
// unique index resolves concurrent submissions and the repository maps the
// losing insert to ErrWorkLogExists. TotalHours is taken as reported and not
// reconciled with the item hours.
func (s *WorkLogServiceImpl) Submit(ctx context.Context, caller user.Caller, req worklog.SubmitWorkLogRequest) (worklog.WorkLogResponse, error) {
	// Date was validated by req.Validate
	date, _ := time.Parse("2006-01-02", req.Date)

	productivity := worklog.ProductivityMedium
	if req.Productivity != nil {
		productivity = worklog.Productivity(*req.Productivity)
	}

	items := make([]worklog.WorkLogItem, 0, len(req.TasksCompleted))
	for _, item := range req.TasksCompleted {
		items = append(items, worklog.WorkLogItem{
			TaskID:      item.TaskID,
			HoursWorked: item.HoursWorked,
			Description: item.Description,
		})
	}

	created, err := s.WorkLogRepository.Create(ctx, worklog.WorkLog{
		UserID:        caller.ID,
		Date:          dateutil.StartOfDay(date),
		Blockers:      req.Blockers,
		Achievements:  req.Achievements,
		TomorrowsPlan: req.TomorrowsPlan,
		TotalHours:    req.TotalHours,
		Productivity:  productivity,
		Items:         items,
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return worklog.ToResponse(created), nil
}

// ListMine implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) ListMine(ctx context.Context, caller user.Caller, year int, month time.Month) ([]worklog.WorkLogResponse, error) {
	from, to := dateutil.MonthRange(year, month)

	logs, err := s.WorkLogRepository.ListByUserBetween(ctx, caller.ID, from, to)
	if err != nil {
		return nil, err
	}

	return worklog.ToResponses(logs), nil
}

// ListForTeam implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) ListForTeam(ctx context.Context, caller user.Caller, filter worklog.TeamFilter) ([]worklog.WorkLogResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return nil, err
	}

	if filter.Date != nil {
		normalized := dateutil.StartOfDay(*filter.Date)
		filter.Date = &normalized
	}

	logs, err := s.WorkLogRepository.ListForTeam(ctx, filter)
	if err != nil {
		return nil, err
	}

	return worklog.ToResponses(logs), nil
}

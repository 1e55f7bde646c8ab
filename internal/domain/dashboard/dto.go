package dashboard

// ========== DASHBOARD STATS ==========

// EmployeeStatsResponse scopes counts to the caller's own records.
type EmployeeStatsResponse struct {
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	PendingTasks    int64 `json:"pending_tasks"`
	InProgressTasks int64 `json:"in_progress_tasks"`
	AttendanceDays  int64 `json:"attendance_days"` // current month
	TotalLeaves     int64 `json:"total_leaves"`    // approved + pending
	PendingLeaves   int64 `json:"pending_leaves"`
}

// AdminStatsResponse holds organization-wide counts for admin/hr callers.
type AdminStatsResponse struct {
	TotalEmployees  int64 `json:"total_employees"` // active users
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	InProgressTasks int64 `json:"in_progress_tasks"`
	PendingLeaves   int64 `json:"pending_leaves"`
	TodayAttendance int64 `json:"today_attendance"`
}

// ========== ANALYTICS ==========

// TaskStatusCount is a task count grouped by status.
type TaskStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AttendanceDayCount is an attendance count for one calendar day.
type AttendanceDayCount struct {
	Date  string `json:"date"` // Format: "YYYY-MM-DD"
	Count int64  `json:"count"`
}

// DepartmentTaskStats groups task counts by the assignee's department.
type DepartmentTaskStats struct {
	Department     string  `json:"department"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"` // percent; 0 when no tasks
}

// AnalyticsResponse is the combined admin/hr analytics payload.
type AnalyticsResponse struct {
	TaskStats       []TaskStatusCount     `json:"task_stats"`
	AttendanceStats []AttendanceDayCount  `json:"attendance_stats"` // current month, ascending
	DepartmentStats []DepartmentTaskStats `json:"department_stats"`
}

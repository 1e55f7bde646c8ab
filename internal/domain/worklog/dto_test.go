package worklog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexoptima/ems-backend-go/internal/pkg/validator"
)

func TestSubmitWorkLogRequestValidate(t *testing.T) {
	req := SubmitWorkLogRequest{
		Date:       "2026-08-30",
		TotalHours: 8,
		TasksCompleted: []WorkLogItemRequest{
			{HoursWorked: 6, Description: "Worked on authentication module"},
		},
	}
	assert.NoError(t, req.Validate())

	// a log with no items is still a valid daily report
	empty := SubmitWorkLogRequest{Date: "2026-08-30", TotalHours: 8}
	assert.NoError(t, empty.Validate())
}

func TestSubmitWorkLogRequestValidateFailures(t *testing.T) {
	base := SubmitWorkLogRequest{
		Date:       "2026-08-30",
		TotalHours: 8,
		TasksCompleted: []WorkLogItemRequest{
			{HoursWorked: 6, Description: "Worked on authentication module"},
			{HoursWorked: 2, Description: "Code review"},
		},
	}

	bad := base
	bad.Date = "yesterday"
	err := bad.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "date")

	bad = base
	bad.TotalHours = 0
	err = bad.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "total_hours")

	bad = base
	bad.TasksCompleted = []WorkLogItemRequest{
		{HoursWorked: 6, Description: "fine"},
		{HoursWorked: 0, Description: " "},
	}
	err = bad.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	assert.Contains(t, m, "tasks_completed[1].hours_worked")
	assert.Contains(t, m, "tasks_completed[1].description")

	invalid := "extreme"
	bad = base
	bad.Productivity = &invalid
	err = bad.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "productivity")
}

package attendance

import "time"

type AttendanceResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         time.Time  `json:"date"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	Status       Status     `json:"status"`
	WorkingHours float64    `json:"working_hours"`
	Notes        *string    `json:"notes,omitempty"`

	UserFirstName *string `json:"user_first_name,omitempty"`
	UserLastName  *string `json:"user_last_name,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
	Department    *string `json:"department,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Date:          a.Date,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Status:        a.Status,
		WorkingHours:  a.WorkingHours,
		Notes:         a.Notes,
		UserFirstName: a.UserFirstName,
		UserLastName:  a.UserLastName,
		EmployeeID:    a.EmployeeID,
		Department:    a.Department,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, ToResponse(a))
	}
	return responses
}

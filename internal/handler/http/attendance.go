package http

import (
	"net/http"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForDay(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	year, month := monthFromQuery(r)

	records, err := h.attendanceService.ListMine(r.Context(), caller, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListForDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	day := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		day = parsed
	}

	records, err := h.attendanceService.ListForDay(r.Context(), caller, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

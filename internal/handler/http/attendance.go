package http

import (
	"encoding/json"
	"net/http"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/attendance"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	attendanceservice "github.com/tabacalera-hn/attendance-backend/internal/service/attendance"
)

type AttendanceHandler interface {
	Entry(w http.ResponseWriter, r *http.Request)
	Exit(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Entry implements AttendanceHandler.
func (h *attendanceHandlerImpl) Entry(w http.ResponseWriter, r *http.Request) {
	var req attendance.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID <= 0 {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	result, err := h.attendanceService.RecordEntry(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry recorded", result)
}

// Exit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Exit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID <= 0 {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	result, err := h.attendanceService.RecordExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exit recorded", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

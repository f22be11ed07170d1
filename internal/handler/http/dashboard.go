package http

import (
	"net/http"

	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	attendanceservice "github.com/tabacalera-hn/attendance-backend/internal/service/attendance"
	dashboardservice "github.com/tabacalera-hn/attendance-backend/internal/service/dashboard"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	AttendanceToday(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  *dashboardservice.Service
	attendanceService *attendanceservice.Service
}

func NewDashboardHandler(dashboardService *dashboardservice.Service, attendanceService *attendanceservice.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceToday implements DashboardHandler.
func (h *dashboardHandlerImpl) AttendanceToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"net/http"

	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	reportservice "github.com/tabacalera-hn/attendance-backend/internal/service/report"
)

type ReportHandler interface {
	Weekly(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	DashboardDaily(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.Service
}

func NewReportHandler(reportService *reportservice.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Weekly implements ReportHandler.
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.reportService.Weekly(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DashboardDaily implements ReportHandler.
func (h *reportHandlerImpl) DashboardDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.reportService.DashboardDaily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

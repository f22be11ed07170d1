package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	employeeservice "github.com/tabacalera-hn/attendance-backend/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeeservice.Service
}

func NewEmployeeHandler(employeeService *employeeservice.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func employeeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var req employee.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// UploadPhoto implements EmployeeHandler.
func (h *employeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer file.Close()

	result, err := h.employeeService.UploadPhoto(r.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded", result)
}

// Stats implements EmployeeHandler.
func (h *employeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.employeeService.Stats(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

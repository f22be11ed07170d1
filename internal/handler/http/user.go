package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	userservice "github.com/tabacalera-hn/attendance-backend/internal/service/user"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService *userservice.Service
}

func NewUserHandler(userService *userservice.Service) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var req user.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", result)
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}

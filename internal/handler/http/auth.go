package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/auth"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	authservice "github.com/tabacalera-hn/attendance-backend/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService *authservice.Service
}

func NewAuthHandler(authService *authservice.Service) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Verify implements AuthHandler. The token comes from the Authorization
// header so an expired session can be diagnosed without middleware.
func (h *authHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	result, err := h.authService.Verify(r.Context(), tokenString)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements AuthHandler.
func (h *authHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req auth.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// userIDFromContext reads the authenticated user's id claim.
func userIDFromContext(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	switch id := claims["id"].(type) {
	case float64:
		return int64(id), nil
	case int64:
		return id, nil
	default:
		return 0, auth.ErrInvalidToken
	}
}

package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/auth"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/jwt"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

const bcryptCost = 10

type Service struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewService(userRepo user.Repository, jwtService jwt.Service) *Service {
	return &Service{userRepo: userRepo, jwtService: jwtService}
}

// Login authenticates an operator and issues a signed token.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if validator.IsEmpty(req.Username) || validator.IsEmpty(req.Password) {
		return nil, validator.ValidationErrors{
			{Field: "credentials", Message: "username and password are required"},
		}
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token: token,
		User:  mapUserInfo(u),
	}, nil
}

// Verify decodes a token and re-checks the user against the database, so
// a deactivated operator loses access before the token expires.
func (s *Service) Verify(ctx context.Context, tokenString string) (*auth.VerifyResponse, error) {
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}

	token, err := s.jwtService.Decode(tokenString)
	if err != nil {
		// The frontend distinguishes expiry from tampering.
		if strings.Contains(err.Error(), "exp") || strings.Contains(err.Error(), "expired") {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	}

	idVal, ok := token.Get("id")
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	id, ok := toInt64(idVal)
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, auth.ErrUserInactive
	}

	return &auth.VerifyResponse{Valid: true, User: mapUserInfo(u)}, nil
}

// UpdateProfile lets an operator change their own username, name, and
// optionally password after re-confirming the current one.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req auth.UpdateProfileRequest) (*auth.UserInfo, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != u.Username {
		if !validator.IsValidUsername(req.Username) {
			return nil, validator.ValidationErrors{
				{Field: "username", Message: "username must be 3-50 characters with no whitespace"},
			}
		}
		u.Username = req.Username
	}
	if req.FullName != "" {
		u.FullName = req.FullName
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			return nil, validator.ValidationErrors{
				{Field: "new_password", Message: "password must be at least 6 characters"},
			}
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return nil, auth.ErrCurrentPasswordWrong
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	info := mapUserInfo(updated)
	return &info, nil
}

func mapUserInfo(u *user.User) auth.UserInfo {
	return auth.UserInfo{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

// toInt64 handles the numeric types jwx may produce for a claim.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

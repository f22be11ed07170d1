package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

const bcryptCost = 10

type Service struct {
	userRepo user.Repository
}

func NewService(userRepo user.Repository) *Service {
	return &Service{userRepo: userRepo}
}

// List returns all active operator accounts.
func (s *Service) List(ctx context.Context) ([]user.Response, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.Response, 0, len(users))
	for i := range users {
		responses = append(responses, *mapUserToResponse(&users[i]))
	}

	return responses, nil
}

// Create registers an operator account.
func (s *Service) Create(ctx context.Context, req user.CreateRequest) (*user.Response, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidUsername(req.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 characters with no whitespace"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if !user.IsValidRole(user.Role(req.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of super_admin, admin, scanner, viewer"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return nil, err
	}

	return mapUserToResponse(created), nil
}

// Update applies a partial update to an operator account.
func (s *Service) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.Response, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != u.Username {
		if !validator.IsValidUsername(*req.Username) {
			return nil, validator.ValidationErrors{
				{Field: "username", Message: "username must be 3-50 characters with no whitespace"},
			}
		}
		u.Username = *req.Username
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, validator.ValidationErrors{
				{Field: "password", Message: "password must be at least 6 characters"},
			}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		if !user.IsValidRole(role) {
			return nil, user.ErrInvalidRole
		}
		// The super admin account keeps its role.
		if u.Role == user.RoleSuperAdmin && role != user.RoleSuperAdmin {
			return nil, user.ErrSuperAdminImmutable
		}
		u.Role = role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	return mapUserToResponse(updated), nil
}

// Delete soft-deletes an operator. The super admin cannot be removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == user.RoleSuperAdmin {
		return user.ErrSuperAdminImmutable
	}

	return s.userRepo.SoftDelete(ctx, id)
}

func mapUserToResponse(u *user.User) *user.Response {
	return &user.Response{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

type stubUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newStubRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*user.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	for _, existing := range s.users {
		if existing.Username == u.Username && existing.IsActive {
			return nil, user.ErrUsernameExists
		}
	}
	s.nextID++
	u.ID = s.nextID
	u.IsActive = true
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range s.users {
		if u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *stubUserRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserRepo) SoftDelete(ctx context.Context, id int64) error {
	u, ok := s.users[id]
	if !ok || !u.IsActive {
		return user.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), user.CreateRequest{
		Username: "scanner1",
		Password: "secret123",
		FullName: "Puesto de Escaneo",
		Role:     "scanner",
	})
	require.NoError(t, err)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newStubRepo())

	_, err := svc.Create(context.Background(), user.CreateRequest{
		Username: "has space",
		Password: "123",
		Role:     "root",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "username")
	assert.Contains(t, m, "password")
	assert.Contains(t, m, "role")
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, user.CreateRequest{Username: "admin2", Password: "secret123", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, user.CreateRequest{Username: "admin2", Password: "secret456", Role: "viewer"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestDeleteSuperAdminRejected(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, user.CreateRequest{Username: "root1", Password: "secret123", Role: "super_admin"})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrSuperAdminImmutable)
	assert.True(t, repo.users[created.ID].IsActive)
}

func TestDeleteIsSoft(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, user.CreateRequest{Username: "viewer1", Password: "secret123", Role: "viewer"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.False(t, repo.users[created.ID].IsActive)
}

func TestUpdateRoleDemotionOfSuperAdminRejected(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, user.CreateRequest{Username: "root1", Password: "secret123", Role: "super_admin"})
	require.NoError(t, err)

	role := "viewer"
	_, err = svc.Update(ctx, created.ID, user.UpdateRequest{Role: &role})
	assert.ErrorIs(t, err, user.ErrSuperAdminImmutable)
}

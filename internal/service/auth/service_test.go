package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/auth"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/jwt"
)

type stubUserRepo struct {
	user.Repository
	users map[int64]*user.User
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

func (s *stubUserRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	s.users[u.ID] = u
	return u, nil
}

func newTestService(t *testing.T) (*Service, *stubUserRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[int64]*user.User{
		1: {ID: 1, Username: "admin", PasswordHash: string(hash), FullName: "Admin", Role: user.RoleSuperAdmin, IsActive: true},
	}}
	jwtService := jwt.NewJWTService("test-secret", "24h")

	return NewService(repo, jwtService), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "super_admin", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	verified, err := svc.Verify(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, int64(1), verified.User.ID)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]*user.User{}}
	// Tokens from this service are already expired on arrival.
	expiredJWT := jwt.NewJWTService("test-secret", "-2h")
	svc := NewService(repo, expiredJWT)

	token, _, err := expiredJWT.GenerateToken(1, "admin", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestVerifyDeactivatedUser(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	repo.users[1].IsActive = false

	_, err = svc.Verify(ctx, login.Token)
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// Wrong current password
	_, err := svc.UpdateProfile(ctx, 1, auth.UpdateProfileRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, auth.ErrCurrentPasswordWrong)

	// Correct current password
	_, err = svc.UpdateProfile(ctx, 1, auth.UpdateProfileRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	err = bcrypt.CompareHashAndPassword([]byte(repo.users[1].PasswordHash), []byte("newsecret"))
	assert.NoError(t, err)
}

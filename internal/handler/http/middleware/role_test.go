package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"id":       int64(1),
		"username": "tester",
		"role":     role,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/weekly", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestRequirePermission(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequirePermission(user.PermissionReportsView)(okHandler)

	tests := []struct {
		role       string
		wantStatus int
	}{
		{"super_admin", http.StatusOK},
		{"admin", http.StatusOK},
		{"scanner", http.StatusForbidden},
		{"viewer", http.StatusForbidden},
		{"unknown", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, requestWithRole(t, tt.role))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequirePermissionWithoutToken(t *testing.T) {
	guarded := RequirePermission(user.PermissionUsersManage)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

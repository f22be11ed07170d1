package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/auth"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if strings.Contains(err.Error(), "expired") {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

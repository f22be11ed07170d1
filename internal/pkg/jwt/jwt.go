package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
)

type Service interface {
	GenerateToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error)
	Decode(tokenString string) (jwt.Token, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(userID int64, username string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":       userID,
		"username": username,
		"role":     string(role),
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) Decode(tokenString string) (jwt.Token, error) {
	return j.tokenAuth.Decode(tokenString)
}

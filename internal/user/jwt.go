package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

type JwtCustomClaims struct {
	Id   uint   `json:"id"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var GenerateJWT = func(id uint, role string) (string, error) {
	claims := JwtCustomClaims{
		Id:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

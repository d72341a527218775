package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims represents the typed JWT issued to API clients.
type AccessTokenClaims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

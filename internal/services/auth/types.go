package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSession    = errors.New("session not found")
)

type AccessClaims struct {
	SID  string `json:"sid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthResult struct {
	AccessToken string    `json:"access_token"`
	ViewerID    string    `json:"viewer_id"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

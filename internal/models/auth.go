package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest selects an account by email and role. No password is involved.
type LoginRequest struct {
	Email string   `json:"email" validate:"required,email"`
	Role  UserRole `json:"role" validate:"required,oneof=teacher student"`
}

// LoginResponse returns the issued session token and the signed-in user.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// SessionClaims represents the JWT payload for session tokens.
type SessionClaims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	Email  string   `json:"email"`
	jwt.RegisteredClaims
}

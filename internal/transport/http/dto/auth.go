package dto

import "time"

type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ViewerID    string    `json:"viewer_id"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

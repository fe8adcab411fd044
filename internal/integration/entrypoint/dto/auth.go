// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for the login endpoint.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Temporary   bool         `json:"temporary,omitempty"`
	User        UserResponse `json:"user"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// UserResponse represents the user data in API responses. The password is never exposed.
type UserResponse struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	Role         string    `json:"role"`
	DisplayLabel string    `json:"display_label"`
	Area         string    `json:"area"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Login:        user.Login,
		Role:         string(user.Role),
		DisplayLabel: user.DisplayLabel,
		Area:         user.Area,
		CreatedAt:    user.CreatedAt,
	}
}

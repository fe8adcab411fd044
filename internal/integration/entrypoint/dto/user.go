package dto

import (
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// SaveUserRequest represents the request body for creating or updating a user.
type SaveUserRequest struct {
	Login        string `json:"login" binding:"required"`
	Password     string `json:"password"`
	Role         string `json:"role" binding:"required"`
	DisplayLabel string `json:"display_label"`
	Area         string `json:"area"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// AreaListResponse represents the known areas.
type AreaListResponse struct {
	Areas []string `json:"areas"`
}

// ToUserListResponse converts users to a UserListResponse DTO.
func ToUserListResponse(users []*entity.User) UserListResponse {
	response := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		response.Users = append(response.Users, ToUserResponse(u))
	}
	return response
}

// file: internals/features/users/dto/auth_dto.go
package dto

import (
	"time"

	"suscriptores_backend/internals/features/users/model"
)

type LoginRequest struct {
	UserName     string `json:"user_name" validate:"required,min=1,max=50"`
	UserPassword string `json:"user_password" validate:"required,min=1"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
}

func ToUserResponse(m model.User) UserResponse {
	return UserResponse{
		UserID:   m.UserID.String(),
		UserName: m.UserName,
		UserRole: m.UserRole,
	}
}

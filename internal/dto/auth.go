package dto

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/pkg/request"
)

// 登入
type LoginDto struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.required":    "email is required",
		"Email.email":       "invalid email address",
		"Password.required": "password is required",
	}
}

type LoginResponseDto struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      *UserResponseDto `json:"user"`
}

// 註冊主管（僅 admin）
type RegisterSupervisorDto struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (RegisterSupervisorDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":     "name is required",
		"Name.min":          "name must be at least 3 characters",
		"Email.required":    "email is required",
		"Email.email":       "invalid email address",
		"Password.required": "password is required",
		"Password.min":      "password must be at least 6 characters",
	}
}

// 建立管理員（CLI 用）
type CreateAdminDto struct {
	Name     string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type UserResponseDto struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        core.Role   `json:"role"`
	Status      core.Status `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
}

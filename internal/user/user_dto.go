package user

import (
	"time"

	"hrms-backend/internal/softdelete"
)

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin manager employee"`
	IsActive *bool   `json:"isActive"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type TempPasswordRequest struct {
	TempPassword string `json:"tempPassword" binding:"required,min=6"`
	ExpiryHours  *int   `json:"expiryHours" binding:"omitempty,min=1,max=8760"`
}

type UserResponse struct {
	ID                   string     `json:"id"`
	Username             string     `json:"username"`
	Email                string     `json:"email"`
	Role                 string     `json:"role"`
	IsActive             bool       `json:"isActive"`
	IsTempPassword       bool       `json:"isTempPassword"`
	TempPasswordExpiry   *time.Time `json:"tempPasswordExpiry,omitempty"`
	RequirePasswordReset bool       `json:"requirePasswordReset"`
	LastLogin            *time.Time `json:"lastLogin,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`

	softdelete.Envelope
}

type UserActionResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type TempPasswordResponse struct {
	Message   string       `json:"message"`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

package autherrors

import (
	"hrms-backend/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.Invalid("Invalid credentials")

	ErrAccessTokenRequired = apperror.Unauthorized("Access token required")

	ErrTokenExpired = apperror.Unauthorized("Token expired")

	ErrInvalidToken = apperror.Unauthorized("Invalid token")

	ErrUserNotFound = apperror.Unauthorized("User not found")

	ErrUserDeactivated = apperror.Unauthorized("User account is deactivated")

	ErrTempPasswordExpired = apperror.Invalid("Temporary password has expired")

	ErrInvalidRole = apperror.Invalid("Invalid role")
)

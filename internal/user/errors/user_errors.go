package usererrors

import (
	"net/http"

	"hrms-backend/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.NotFound("User not found")

	// ErrUserAlreadyExists covers both username and email collisions,
	// including collisions with soft-deleted users.
	ErrUserAlreadyExists = apperror.Conflict("User already exists")

	ErrInvalidUserID = apperror.Invalid("Invalid user ID")

	ErrInvalidRole = apperror.Invalid("Invalid role")

	ErrInvalidExpiryHours = apperror.Invalid("Expiry hours must be between 1 and 8760")

	ErrRoleChangeForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only admin can change user roles",
		http.StatusForbidden,
	)

	ErrStatusChangeForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only admin can change user status",
		http.StatusForbidden,
	)
)

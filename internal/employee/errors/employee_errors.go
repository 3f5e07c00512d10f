package employeeerrors

import (
	"hrms-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.NotFound("Employee not found")

	ErrEmployeeAlreadyExists = apperror.Conflict("Employee profile already exists for this user")

	ErrInvalidEmployeeID = apperror.Invalid("Invalid employee ID")

	ErrInvalidDate = apperror.Invalid("Invalid date format, expected YYYY-MM-DD")

	ErrInvalidReference = apperror.Invalid("Referenced user or department does not exist")
)

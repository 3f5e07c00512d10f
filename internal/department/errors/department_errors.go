package departmenterrors

import (
	"hrms-backend/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.NotFound("Department not found")

	ErrDepartmentAlreadyExists = apperror.Conflict("Department already exists")

	ErrInvalidDepartmentID = apperror.Invalid("Invalid department ID")

	ErrInvalidManager = apperror.Invalid("Manager must be an existing employee")
)

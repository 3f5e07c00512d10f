package attendanceerrors

import (
	"hrms-backend/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.NotFound("Attendance record not found")

	ErrAttendanceAlreadyExists = apperror.Conflict("Attendance record already exists for this date")

	ErrInvalidAttendanceID = apperror.Invalid("Invalid attendance ID")
	ErrInvalidEmployeeID   = apperror.Invalid("Invalid employee ID")
	ErrInvalidDate         = apperror.Invalid("Invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange    = apperror.Invalid("Start date must not be after end date")

	ErrEmployeeNotFound = apperror.NotFound("Employee not found")
)

// Check-in state machine.
var (
	ErrAlreadyCheckedIn  = apperror.Conflict("Employee already checked in today")
	ErrNoCheckInToday    = apperror.NotFound("No check-in record found for today")
	ErrAlreadyCheckedOut = apperror.Conflict("Employee already checked out today")
)

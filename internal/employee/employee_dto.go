package employee

import (
	"time"

	"hrms-backend/internal/softdelete"
)

type LeaveBalanceInput struct {
	Annual *int `json:"annual" binding:"omitempty,min=0"`
	Sick   *int `json:"sick" binding:"omitempty,min=0"`
}

type CreateEmployeeRequest struct {
	UserID         string             `json:"userId" binding:"required,uuid"`
	FirstName      string             `json:"firstName" binding:"required,max=100"`
	LastName       string             `json:"lastName" binding:"required,max=100"`
	DateOfBirth    string             `json:"dateOfBirth"`
	Gender         string             `json:"gender" binding:"omitempty,oneof=male female other"`
	ContactNumber  string             `json:"contactNumber" binding:"max=50"`
	Address        string             `json:"address"`
	HireDate       string             `json:"hireDate"`
	DepartmentID   string             `json:"departmentId" binding:"omitempty,uuid"`
	Position       string             `json:"position" binding:"max=100"`
	Salary         float64            `json:"salary" binding:"gte=0"`
	EmploymentType string             `json:"employmentType" binding:"omitempty,oneof=full-time part-time contract"`
	LeaveBalance   *LeaveBalanceInput `json:"leaveBalance"`
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
// An empty departmentId clears the department.
type UpdateEmployeeRequest struct {
	FirstName      *string            `json:"firstName" binding:"omitempty,max=100"`
	LastName       *string            `json:"lastName" binding:"omitempty,max=100"`
	DateOfBirth    *string            `json:"dateOfBirth"`
	Gender         *string            `json:"gender" binding:"omitempty,oneof=male female other"`
	ContactNumber  *string            `json:"contactNumber" binding:"omitempty,max=50"`
	Address        *string            `json:"address"`
	HireDate       *string            `json:"hireDate"`
	DepartmentID   *string            `json:"departmentId" binding:"omitempty,uuid|eq="`
	Position       *string            `json:"position" binding:"omitempty,max=100"`
	Salary         *float64           `json:"salary" binding:"omitempty,gte=0"`
	EmploymentType *string            `json:"employmentType" binding:"omitempty,oneof=full-time part-time contract"`
	LeaveBalance   *LeaveBalanceInput `json:"leaveBalance"`
}

type LeaveBalanceResponse struct {
	Annual int `json:"annual"`
	Sick   int `json:"sick"`
}

type EmployeeUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID             string                      `json:"id"`
	UserID         string                      `json:"userId"`
	FirstName      string                      `json:"firstName"`
	LastName       string                      `json:"lastName"`
	DateOfBirth    string                      `json:"dateOfBirth,omitempty"`
	Gender         string                      `json:"gender,omitempty"`
	ContactNumber  string                      `json:"contactNumber,omitempty"`
	Address        string                      `json:"address,omitempty"`
	HireDate       string                      `json:"hireDate,omitempty"`
	DepartmentID   string                      `json:"departmentId,omitempty"`
	Position       string                      `json:"position,omitempty"`
	Salary         float64                     `json:"salary"`
	EmploymentType string                      `json:"employmentType,omitempty"`
	LeaveBalance   LeaveBalanceResponse        `json:"leaveBalance"`
	User           *EmployeeUserResponse       `json:"user,omitempty"`
	Department     *EmployeeDepartmentResponse `json:"department,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`

	softdelete.Envelope
}

type EmployeeActionResponse struct {
	Message  string           `json:"message"`
	Employee EmployeeResponse `json:"employee"`
}

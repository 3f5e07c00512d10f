package leave

import (
	"time"

	"hrms-backend/internal/softdelete"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	LeaveType  string `json:"leaveType" binding:"required,oneof=sick vacation personal"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	Reason     string `json:"reason"`
}

type UpdateLeaveRequest struct {
	LeaveType *string `json:"leaveType" binding:"omitempty,oneof=sick vacation personal"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Reason    *string `json:"reason"`
}

// DecisionRequest is the body of approve and reject. ApprovedBy is an
// employee id and defaults to the acting user's employee profile.
type DecisionRequest struct {
	ApprovedBy string `json:"approvedBy" binding:"omitempty,uuid"`
}

type DateRangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type EmployeeSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position,omitempty"`
}

type LeaveResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
	LeaveType  string           `json:"leaveType"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Reason     string           `json:"reason,omitempty"`
	Status     string           `json:"status"`
	ApprovedBy string           `json:"approvedBy,omitempty"`
	Approver   *EmployeeSummary `json:"approver,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`

	softdelete.Envelope
}

type LeaveActionResponse struct {
	Message      string        `json:"message"`
	LeaveRequest LeaveResponse `json:"leaveRequest"`
}

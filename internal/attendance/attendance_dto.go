package attendance

import (
	"time"

	"hrms-backend/internal/softdelete"
)

type CheckRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
}

type CreateAttendanceRequest struct {
	EmployeeID string     `json:"employeeId" binding:"required,uuid"`
	Date       string     `json:"date" binding:"required"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Status     string     `json:"status" binding:"omitempty,oneof=present absent late"`
	Notes      string     `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Date     *string    `json:"date"`
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
	Status   *string    `json:"status" binding:"omitempty,oneof=present absent late"`
	Notes    *string    `json:"notes"`
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

type AttendanceResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
	Date       string           `json:"date"`
	CheckIn    *time.Time       `json:"checkIn,omitempty"`
	CheckOut   *time.Time       `json:"checkOut,omitempty"`
	Status     string           `json:"status"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`

	softdelete.Envelope
}

type AttendanceActionResponse struct {
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`
}

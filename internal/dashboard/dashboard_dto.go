package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type TotalStats struct {
	Total int64 `json:"total"`
}

type LeaveRequestStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

// AttendanceStats covers today's rows. Rate counts present and late check-ins
// against all visible employees.
type AttendanceStats struct {
	Today   int64  `json:"today"`
	Present int64  `json:"present"`
	Rate    string `json:"rate"`
}

type StatsResponse struct {
	Users         UserStats         `json:"users"`
	Employees     TotalStats        `json:"employees"`
	Departments   TotalStats        `json:"departments"`
	LeaveRequests LeaveRequestStats `json:"leaveRequests"`
	Attendance    AttendanceStats   `json:"attendance"`
}

// DepartmentCount is one bucket of the head-count breakdown. DepartmentID is
// nil for the Unassigned bucket.
type DepartmentCount struct {
	DepartmentID   *uuid.UUID `json:"departmentId"`
	DepartmentName string     `json:"departmentName"`
	EmployeeCount  int64      `json:"employeeCount"`
}

type AttendanceTrend struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Late    int64  `json:"late"`
	Total   int64  `json:"total"`
}

type CountBy struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type LeaveStatsResponse struct {
	Monthly  []CountBy `json:"monthly"`
	ByType   []CountBy `json:"byType"`
	ByStatus []CountBy `json:"byStatus"`
}

const (
	ActivityLeaveRequest = "leave_request"
	ActivityAttendance   = "attendance"
)

type ActivityEmployee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Activity struct {
	Type      string            `json:"type"`
	ID        string            `json:"id"`
	Employee  *ActivityEmployee `json:"employee,omitempty"`
	Data      map[string]any    `json:"data"`
	CreatedAt time.Time         `json:"createdAt"`
}

type RecentActivitiesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

package leave

import (
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeSick     = "sick"
	TypeVacation = "vacation"
	TypePersonal = "personal"
)

// ValidStatus reports whether s is one of the leave request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	LeaveType  string     `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate  time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time  `gorm:"column:end_date;type:date;not null"`
	Reason     string     `gorm:"column:reason;type:text"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	softdelete.Envelope `gorm:"embedded"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	Approver *EmployeeRef `gorm:"foreignKey:ApprovedBy;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Position  string    `gorm:"column:position"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

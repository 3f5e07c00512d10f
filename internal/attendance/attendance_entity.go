package attendance

import (
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Attendance is one employee's record for one UTC calendar day. Only one
// non-deleted row may exist per (employee_id, date).
type Attendance struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:uq_attendances_employee_date,unique,where:is_deleted = false"`
	Date       time.Time  `gorm:"column:date;type:date;not null;index:uq_attendances_employee_date,unique,where:is_deleted = false"`
	CheckIn    *time.Time `gorm:"column:check_in;type:timestamptz"`
	CheckOut   *time.Time `gorm:"column:check_out;type:timestamptz"`
	Status     string     `gorm:"column:status;type:varchar(10);not null;default:present"`
	Notes      string     `gorm:"column:notes;type:text"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	softdelete.Envelope `gorm:"embedded"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Position  string    `gorm:"column:position"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

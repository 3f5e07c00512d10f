package employee

import (
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
)

const (
	DefaultAnnualLeave = 20
	DefaultSickLeave   = 10
)

type LeaveBalance struct {
	Annual int `gorm:"column:annual;not null;default:20"`
	Sick   int `gorm:"column:sick;not null;default:10"`
}

type Employee struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_employees_user_id"`
	FirstName      string     `gorm:"column:first_name;type:varchar(100)"`
	LastName       string     `gorm:"column:last_name;type:varchar(100)"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth;type:date"`
	Gender         string     `gorm:"column:gender;type:varchar(10)"`
	ContactNumber  string     `gorm:"column:contact_number;type:varchar(50)"`
	Address        string     `gorm:"column:address;type:text"`
	HireDate       *time.Time `gorm:"column:hire_date;type:date"`
	DepartmentID   *uuid.UUID `gorm:"column:department_id;type:uuid;index"`
	Position       string     `gorm:"column:position;type:varchar(100)"`
	Salary         float64    `gorm:"column:salary;type:numeric(12,2);not null;default:0"`
	EmploymentType string     `gorm:"column:employment_type;type:varchar(20)"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	LeaveBalance LeaveBalance `gorm:"embedded;embeddedPrefix:leave_balance_"`

	softdelete.Envelope `gorm:"embedded"`

	User       *EmployeeUser       `gorm:"foreignKey:UserID;references:ID"`
	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeUser is the account summary preloaded with an employee.
type EmployeeUser struct {
	ID       uuid.UUID `gorm:"column:id;primaryKey"`
	Username string    `gorm:"column:username"`
	Email    string    `gorm:"column:email"`
	Role     string    `gorm:"column:role"`
}

func (EmployeeUser) TableName() string {
	return "users"
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"column:id;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

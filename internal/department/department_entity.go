package department

import (
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_departments_name"`
	Description string     `gorm:"column:description;type:text"`
	ManagerID   *uuid.UUID `gorm:"column:manager_id;type:uuid;index"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	softdelete.Envelope `gorm:"embedded"`

	Manager *DepartmentManager `gorm:"foreignKey:ManagerID;references:ID"`
}

func (Department) TableName() string {
	return "departments"
}

// DepartmentManager is the employee summary preloaded as a department's manager.
type DepartmentManager struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Position  string    `gorm:"column:position"`
}

func (DepartmentManager) TableName() string {
	return "employees"
}

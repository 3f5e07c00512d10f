package department

import (
	"time"

	"hrms-backend/internal/softdelete"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId" binding:"omitempty,uuid"`
}

// UpdateDepartmentRequest is a partial update. An empty managerId removes the manager.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId" binding:"omitempty,uuid|eq="`
}

type ManagerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position,omitempty"`
}

type DepartmentResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ManagerID   string           `json:"managerId,omitempty"`
	Manager     *ManagerResponse `json:"manager,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	softdelete.Envelope
}

type DepartmentActionResponse struct {
	Message    string             `json:"message"`
	Department DepartmentResponse `json:"department"`
}

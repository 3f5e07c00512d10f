// Package softdelete makes "deleted" a reversible state that every default
// query excludes. Entity repositories compose Store with their own queries;
// the visibility filter is applied only through Scope.
package softdelete

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColumnIsDeleted = "is_deleted"
	ColumnDeletedAt = "deleted_at"
	ColumnDeletedBy = "deleted_by"
)

// Envelope is embedded in every persisted entity.
// DeletedAt is non-nil iff IsDeleted. DeletedBy is nil when the actor is unknown.
type Envelope struct {
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false;index" json:"isDeleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deletedAt"`
	DeletedBy *uuid.UUID `gorm:"column:deleted_by;type:uuid" json:"deletedBy"`
}

func isEnvelopeColumn(name string) bool {
	switch name {
	case ColumnIsDeleted, ColumnDeletedAt, ColumnDeletedBy,
		"IsDeleted", "DeletedAt", "DeletedBy", "isDeleted", "deletedAt", "deletedBy":
		return true
	}
	return false
}

package user

import (
	"time"

	"hrms-backend/internal/rbac"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username             string     `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Email                string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash         string     `gorm:"column:password_hash;type:text;not null"`
	Role                 rbac.Role  `gorm:"column:role;type:varchar(20);not null;default:employee"`
	IsActive             bool       `gorm:"column:is_active;not null;default:true"`
	IsTempPassword       bool       `gorm:"column:is_temp_password;not null;default:false"`
	TempPasswordExpiry   *time.Time `gorm:"column:temp_password_expiry"`
	RequirePasswordReset bool       `gorm:"column:require_password_reset;not null;default:false"`
	LastLogin            *time.Time `gorm:"column:last_login"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	softdelete.Envelope `gorm:"embedded"`
}

func (User) TableName() string {
	return "users"
}

// TempPasswordExpired reports whether u holds a temporary password past its expiry.
func (u User) TempPasswordExpired(now time.Time) bool {
	return u.IsTempPassword && u.TempPasswordExpiry != nil && now.After(*u.TempPasswordExpiry)
}

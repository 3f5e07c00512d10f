package user

import (
	"context"
	"database/sql"

	"hrms-backend/internal/rbac"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context, mode softdelete.Mode) ([]User, error)
	FindByRole(ctx context.Context, role rbac.Role) ([]User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*User, error)
	Restore(ctx context.Context, id uuid.UUID) (*User, error)
	PermanentlyDelete(ctx context.Context, id uuid.UUID) (*User, error)
}

type repository struct {
	store *softdelete.Store[User]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: softdelete.NewStore[User](db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.store.Create(ctx, u)
}

func (r *repository) FindAll(ctx context.Context, mode softdelete.Mode) ([]User, error) {
	return r.store.Find(ctx, mode, orderByCreated)
}

func (r *repository) FindByRole(ctx context.Context, role rbac.Role) ([]User, error) {
	return r.store.FindVisible(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("role = ?", role)
	}, orderByCreated)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.store.First(ctx, softdelete.Visible, id)
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.store.Query(ctx, softdelete.Visible).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByUsernameOrEmail also matches soft-deleted users.
func (r *repository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.store.Query(ctx, softdelete.IncludeDeleted).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error) {
	return r.store.Update(ctx, id, fields)
}

func (r *repository) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*User, error) {
	return r.store.MarkDeleted(ctx, id, actor)
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.store.Restore(ctx, id)
}

func (r *repository) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.store.PermanentlyDelete(ctx, id)
}

func orderByCreated(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

package department

import (
	"context"
	"database/sql"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, mode softdelete.Mode) ([]Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Department, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Department, error)
	Restore(ctx context.Context, id uuid.UUID) (*Department, error)
	PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Department, error)
}

type repository struct {
	store *softdelete.Store[Department]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: softdelete.NewStore[Department](db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.store.Create(ctx, dept)
}

func (r *repository) FindAll(ctx context.Context, mode softdelete.Mode) ([]Department, error) {
	return r.store.Find(ctx, mode, softdelete.Preload("Manager"), orderByName)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	return r.store.First(ctx, softdelete.Visible, id, softdelete.Preload("Manager"))
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Department, error) {
	return r.store.Update(ctx, id, fields, softdelete.Preload("Manager"))
}

func (r *repository) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Department, error) {
	return r.store.MarkDeleted(ctx, id, actor)
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) (*Department, error) {
	return r.store.Restore(ctx, id)
}

func (r *repository) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Department, error) {
	return r.store.PermanentlyDelete(ctx, id)
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

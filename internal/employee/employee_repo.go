package employee

import (
	"context"
	"database/sql"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, mode softdelete.Mode) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Employee, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Employee, error)
	Restore(ctx context.Context, id uuid.UUID) (*Employee, error)
	PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Employee, error)
}

type repository struct {
	store *softdelete.Store[Employee]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: softdelete.NewStore[Employee](db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.store.Create(ctx, e)
}

func (r *repository) FindAll(ctx context.Context, mode softdelete.Mode) ([]Employee, error) {
	return r.store.Find(ctx, mode, withReferences(orderByCreated)...)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return r.store.First(ctx, softdelete.Visible, id, withReferences()...)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Employee, error) {
	return r.store.Update(ctx, id, fields, withReferences()...)
}

func (r *repository) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Employee, error) {
	return r.store.MarkDeleted(ctx, id, actor)
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return r.store.Restore(ctx, id)
}

func (r *repository) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return r.store.PermanentlyDelete(ctx, id)
}

// withReferences preloads the account and department; deleted ones stay nil.
func withReferences(extra ...softdelete.Filter) []softdelete.Filter {
	return append([]softdelete.Filter{
		softdelete.Preload("User"),
		softdelete.Preload("Department"),
	}, extra...)
}

func orderByCreated(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

package leave

import (
	"context"
	"database/sql"
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, mode softdelete.Mode) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
	FindEmployeeIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*LeaveRequest, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*LeaveRequest, error)
	Restore(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	PermanentlyDelete(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
}

type repository struct {
	db    *gorm.DB
	store *softdelete.Store[LeaveRequest]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, store: softdelete.NewStore[LeaveRequest](db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.store.Create(ctx, l)
}

func withReferences(extra ...softdelete.Filter) []softdelete.Filter {
	return append([]softdelete.Filter{
		softdelete.Preload("Employee"),
		softdelete.Preload("Approver"),
	}, extra...)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func (r *repository) FindAll(ctx context.Context, mode softdelete.Mode) ([]LeaveRequest, error) {
	return r.store.Find(ctx, mode, withReferences(newestFirst)...)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	return r.store.First(ctx, softdelete.Visible, id, withReferences()...)
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	return r.store.FindVisible(ctx, withReferences(
		func(db *gorm.DB) *gorm.DB { return db.Where("status = ?", status) },
		newestFirst,
	)...)
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	return r.store.FindVisible(ctx, withReferences(
		func(db *gorm.DB) *gorm.DB { return db.Where("employee_id = ?", employeeID) },
		newestFirst,
	)...)
}

// FindByDateRange matches requests that start or end inside [start, end].
func (r *repository) FindByDateRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error) {
	return r.store.FindVisible(ctx, withReferences(
		func(db *gorm.DB) *gorm.DB {
			return db.Where("(start_date BETWEEN ? AND ?) OR (end_date BETWEEN ? AND ?)", start, end, start, end)
		},
		newestFirst,
	)...)
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Scopes(softdelete.Scope(softdelete.Visible)).
		Where("id = ?", employeeID).
		Count(&n).Error
	return n > 0, err
}

// FindEmployeeIDByUserID returns the visible employee profile of userID.
func (r *repository) FindEmployeeIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Scopes(softdelete.Scope(softdelete.Visible)).
		Where("user_id = ?", userID).
		First(&ref).Error
	if err != nil {
		return uuid.Nil, err
	}
	return ref.ID, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*LeaveRequest, error) {
	return r.store.Update(ctx, id, fields, withReferences()...)
}

func (r *repository) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*LeaveRequest, error) {
	return r.store.MarkDeleted(ctx, id, actor)
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	return r.store.Restore(ctx, id)
}

func (r *repository) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	return r.store.PermanentlyDelete(ctx, id)
}

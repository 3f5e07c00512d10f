package attendance

import (
	"context"
	"database/sql"
	"time"

	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context, mode softdelete.Mode) ([]Attendance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*Attendance, error)
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
	InsertCheckIn(ctx context.Context, a *Attendance) (bool, error)
	FillCheckIn(ctx context.Context, employeeID uuid.UUID, day, at time.Time, status string) (bool, error)
	MarkCheckOut(ctx context.Context, employeeID uuid.UUID, day, at time.Time) (bool, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Attendance, error)
	MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Attendance, error)
	Restore(ctx context.Context, id uuid.UUID) (*Attendance, error)
	PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Attendance, error)
}

type repository struct {
	db    *gorm.DB
	store *softdelete.Store[Attendance]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, store: softdelete.NewStore[Attendance](db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.store.Create(ctx, a)
}

func (r *repository) FindAll(ctx context.Context, mode softdelete.Mode) ([]Attendance, error) {
	return r.store.Find(ctx, mode, softdelete.Preload("Employee"), orderByDate)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error) {
	return r.store.First(ctx, softdelete.Visible, id, softdelete.Preload("Employee"))
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error) {
	return r.store.FindVisible(ctx,
		softdelete.Preload("Employee"),
		func(db *gorm.DB) *gorm.DB { return db.Where("employee_id = ?", employeeID) },
		orderByDate,
	)
}

// FindByDateRange returns rows whose date lies in [start, end], both inclusive.
func (r *repository) FindByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	return r.store.FindVisible(ctx,
		softdelete.Preload("Employee"),
		func(db *gorm.DB) *gorm.DB { return db.Where("date BETWEEN ? AND ?", start, end) },
		orderByDate,
	)
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.store.Query(ctx, softdelete.Visible).
		Where("employee_id = ? AND date = ?", employeeID, day).
		Preload("Employee", softdelete.Scope(softdelete.Visible)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// EmployeeExists reports whether a non-deleted employee with employeeID exists.
func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Scopes(softdelete.Scope(softdelete.Visible)).
		Where("id = ?", employeeID).
		Count(&n).Error
	return n > 0, err
}

// InsertCheckIn inserts a checked-in row unless a live row already exists for
// the same employee and day. It reports whether a row was written.
func (r *repository) InsertCheckIn(ctx context.Context, a *Attendance) (bool, error) {
	n, err := r.store.Insert(ctx, a, clause.OnConflict{
		Columns:     []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "is_deleted = false"}}},
		DoNothing:   true,
	})
	return n > 0, err
}

// FillCheckIn stamps check_in on an existing same-day row that has none.
func (r *repository) FillCheckIn(ctx context.Context, employeeID uuid.UUID, day, at time.Time, status string) (bool, error) {
	res := r.store.Query(ctx, softdelete.Visible).
		Where("employee_id = ? AND date = ? AND check_in IS NULL", employeeID, day).
		Updates(map[string]any{"check_in": at, "status": status})
	return res.RowsAffected > 0, res.Error
}

// MarkCheckOut sets check_out once, only on a checked-in row.
func (r *repository) MarkCheckOut(ctx context.Context, employeeID uuid.UUID, day, at time.Time) (bool, error) {
	res := r.store.Query(ctx, softdelete.Visible).
		Where("employee_id = ? AND date = ? AND check_in IS NOT NULL AND check_out IS NULL", employeeID, day).
		Update("check_out", at)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Attendance, error) {
	return r.store.Update(ctx, id, fields, softdelete.Preload("Employee"))
}

func (r *repository) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*Attendance, error) {
	return r.store.MarkDeleted(ctx, id, actor)
}

func (r *repository) Restore(ctx context.Context, id uuid.UUID) (*Attendance, error) {
	return r.store.Restore(ctx, id)
}

func (r *repository) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*Attendance, error) {
	return r.store.PermanentlyDelete(ctx, id)
}

func orderByDate(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC")
}

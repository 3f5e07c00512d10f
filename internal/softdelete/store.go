package softdelete

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm-backed base repository for an entity type T with the
// visibility policy attached. T must map to a table with an "id" primary key
// and an embedded Envelope.
type Store[T any] struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db, now: time.Now}
}

// WithTx binds the store to an open database/sql transaction so that writes
// commit together with other work on tx (for example outbox rows).
func (s *Store[T]) WithTx(tx *sql.Tx) *Store[T] {
	if tx == nil {
		return s
	}
	db := s.db.Session(&gorm.Session{
		NewDB:                  true,
		SkipDefaultTransaction: true,
		Context:                context.Background(),
	})
	db.Statement.ConnPool = tx
	return &Store[T]{db: db, now: s.now}
}

// Query starts a statement on T's table with the visibility rule for mode
// already applied. Entity repositories build their own queries on top of it.
func (s *Store[T]) Query(ctx context.Context, mode Mode) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Scopes(Scope(mode))
}

// Create inserts rec. The envelope is left to its column defaults.
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	_, err := s.Insert(ctx, rec)
	return err
}

// Insert is Create with extra clauses (for example ON CONFLICT) and reports
// the number of rows written.
func (s *Store[T]) Insert(ctx context.Context, rec *T, exprs ...clause.Expression) (int64, error) {
	res := s.db.WithContext(ctx).
		Omit(ColumnIsDeleted, ColumnDeletedAt, ColumnDeletedBy).
		Clauses(exprs...).
		Create(rec)
	return res.RowsAffected, res.Error
}

func (s *Store[T]) Find(ctx context.Context, mode Mode, filters ...Filter) ([]T, error) {
	var rows []T
	err := s.Query(ctx, mode).Scopes(filters...).Find(&rows).Error
	return rows, err
}

func (s *Store[T]) FindVisible(ctx context.Context, filters ...Filter) ([]T, error) {
	return s.Find(ctx, Visible, filters...)
}

func (s *Store[T]) FindDeletedOnly(ctx context.Context, filters ...Filter) ([]T, error) {
	return s.Find(ctx, DeletedOnly, filters...)
}

func (s *Store[T]) FindIncludingDeleted(ctx context.Context, filters ...Filter) ([]T, error) {
	return s.Find(ctx, IncludeDeleted, filters...)
}

// First returns gorm.ErrRecordNotFound when id does not exist or is hidden by mode.
func (s *Store[T]) First(ctx context.Context, mode Mode, id uuid.UUID, filters ...Filter) (*T, error) {
	var rec T
	err := s.Query(ctx, mode).Scopes(filters...).Where(idEq(id)).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store[T]) Count(ctx context.Context, mode Mode, filters ...Filter) (int64, error) {
	var n int64
	err := s.Query(ctx, mode).Scopes(filters...).Count(&n).Error
	return n, err
}

// Update applies a partial update to a visible row. Envelope columns and the
// primary key are dropped from fields.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any, filters ...Filter) (*T, error) {
	fields = stripProtected(fields)
	if len(fields) == 0 {
		return s.First(ctx, Visible, id, filters...)
	}

	res := s.Query(ctx, Visible).Where(idEq(id)).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.First(ctx, Visible, id, filters...)
}

// MarkDeleted soft-deletes id. Deleting an already deleted row re-stamps
// deleted_at and deleted_by.
func (s *Store[T]) MarkDeleted(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (*T, error) {
	var deletedBy any
	if actor != nil {
		deletedBy = *actor
	}

	res := s.Query(ctx, IncludeDeleted).Where(idEq(id)).Updates(map[string]any{
		ColumnIsDeleted: true,
		ColumnDeletedAt: s.now().UTC(),
		ColumnDeletedBy: deletedBy,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.First(ctx, IncludeDeleted, id)
}

// Restore clears the whole envelope in a single statement.
func (s *Store[T]) Restore(ctx context.Context, id uuid.UUID) (*T, error) {
	res := s.Query(ctx, IncludeDeleted).Where(idEq(id)).Updates(map[string]any{
		ColumnIsDeleted: false,
		ColumnDeletedAt: nil,
		ColumnDeletedBy: nil,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.First(ctx, Visible, id)
}

// PermanentlyDelete removes the row regardless of its envelope and returns
// what was removed.
func (s *Store[T]) PermanentlyDelete(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := s.First(ctx, IncludeDeleted, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Where(idEq(id)).Delete(new(T))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func stripProtected(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "ID" || isEnvelopeColumn(k) {
			continue
		}
		out[k] = v
	}
	return out
}

package leave

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewRepository(gdb), mock
}

func TestRepository_FindByDateRange_Overlap(t *testing.T) {
	repo, mock := newTestRepo(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE "leave_requests"."is_deleted" = \$1 AND \(\(start_date BETWEEN \$2 AND \$3\) OR \(end_date BETWEEN \$4 AND \$5\)\) ORDER BY created_at DESC`).
		WithArgs(false, start, end, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := repo.FindByDateRange(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByStatus_VisibleOnly(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE "leave_requests"."is_deleted" = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WithArgs(false, StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByStatus(context.Background(), StatusPending)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindEmployeeIDByUserID(t *testing.T) {
	repo, mock := newTestRepo(t)
	uid := uuid.New()
	eid := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE user_id = \$1 AND "employees"."is_deleted" = \$2 ORDER BY "employees"."id" LIMIT`).
		WithArgs(uid, false, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(eid, uid))

	got, err := repo.FindEmployeeIDByUserID(context.Background(), uid)

	assert.NoError(t, err)
	assert.Equal(t, eid, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package attendance

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

func TestRepository_InsertCheckIn_ConflictOnLiveRow(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "attendances" .+ ON CONFLICT \("employee_id","date"\) WHERE is_deleted = false DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	inserted, err := repo.InsertCheckIn(context.Background(), &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Date:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		CheckIn:    &now,
		Status:     StatusPresent,
	})

	assert.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkCheckOut_OnlyOnce(t *testing.T) {
	repo, mock := newTestRepo(t)
	eid := uuid.New()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	at := day.Add(17 * time.Hour)

	mock.ExpectExec(`UPDATE "attendances" SET "check_out"=\$1,"updated_at"=\$2 WHERE \(employee_id = \$3 AND date = \$4 AND check_in IS NOT NULL AND check_out IS NULL\) AND "attendances"."is_deleted" = \$5`).
		WithArgs(at, sqlmock.AnyArg(), eid, day, false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	done, err := repo.MarkCheckOut(context.Background(), eid, day, at)

	assert.NoError(t, err)
	assert.False(t, done)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EmployeeExists_IgnoresDeleted(t *testing.T) {
	repo, mock := newTestRepo(t)
	eid := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE id = \$1 AND "employees"."is_deleted" = \$2`).
		WithArgs(eid, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.EmployeeExists(context.Background(), eid)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

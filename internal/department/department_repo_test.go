package department

import (
	"context"
	"testing"

	"hrms-backend/internal/softdelete"

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

func TestRepository_FindAll_Modes(t *testing.T) {
	cases := []struct {
		mode softdelete.Mode
		want bool
	}{
		{softdelete.Visible, false},
		{softdelete.DeletedOnly, true},
	}

	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			repo, mock := newTestRepo(t)
			mock.ExpectQuery(`SELECT \* FROM "departments" WHERE "departments"."is_deleted" = \$1 ORDER BY name ASC`).
				WithArgs(tc.want).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "manager_id", "is_deleted"}).
					AddRow(uuid.NewString(), "Engineering", nil, tc.want))

			depts, err := repo.FindAll(context.Background(), tc.mode)

			require.NoError(t, err)
			require.Len(t, depts, 1)
			assert.Equal(t, tc.want, depts[0].IsDeleted)
			assert.Nil(t, depts[0].Manager)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAll_IncludeDeletedHasNoFilter(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "departments" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	depts, err := repo.FindAll(context.Background(), softdelete.IncludeDeleted)

	assert.NoError(t, err)
	assert.Empty(t, depts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

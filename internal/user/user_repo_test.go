package user

import (
	"context"
	"testing"

	"hrms-backend/internal/rbac"

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

func TestRepository_ExistsByUsernameOrEmail_IncludesDeleted(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1 OR email = \$2`).
		WithArgs("alice", "alice@mail.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@mail.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUsername_Visible(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 AND "users"."is_deleted" = \$2`).
		WithArgs("alice", false, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).AddRow(id.String(), "alice", "employee"))

	u, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, rbac.RoleEmployee, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

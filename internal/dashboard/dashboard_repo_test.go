package dashboard

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

func TestRepository_CountEmployees_ExcludesDeleted(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE "employees"."is_deleted" = \$1`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountEmployees(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountAttendance_Statuses(t *testing.T) {
	repo, mock := newTestRepo(t)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendances" WHERE "attendances"."is_deleted" = \$1 AND date = \$2 AND status IN \(\$3,\$4\)`).
		WithArgs(false, day, "present", "late").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountAttendance(context.Background(), day, []string{"present", "late"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EmployeesByDepartment(t *testing.T) {
	repo, mock := newTestRepo(t)
	deptID := uuid.New()

	mock.ExpectQuery(`SELECT departments.id AS department_id, COALESCE\(departments.name, \$1\) AS department_name, COUNT\(\*\) AS employee_count FROM "employees" LEFT JOIN departments ON departments.id = employees.department_id AND departments.is_deleted = \$2 WHERE "employees"."is_deleted" = \$3 GROUP BY departments.id, departments.name ORDER BY employee_count DESC`).
		WithArgs("Unassigned", false, false).
		WillReturnRows(sqlmock.NewRows([]string{"department_id", "department_name", "employee_count"}).
			AddRow(deptID, "Engineering", 3).
			AddRow(nil, "Unassigned", 1))

	rows, err := repo.EmployeesByDepartment(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, deptID, *rows[0].DepartmentID)
	assert.Nil(t, rows[1].DepartmentID)
	assert.Equal(t, "Unassigned", rows[1].DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

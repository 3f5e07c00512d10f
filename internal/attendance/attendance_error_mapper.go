package attendance

import (
	"errors"

	attendanceerrors "hrms-backend/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_attendances_employee_date" {
				return attendanceerrors.ErrAttendanceAlreadyExists
			}
		case "23503":
			return attendanceerrors.ErrEmployeeNotFound
		}
	}

	return err
}

package employee

import (
	"errors"

	employeeerrors "hrms-backend/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_employees_user_id" {
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		case "23503":
			return employeeerrors.ErrInvalidReference
		}
	}

	return err
}

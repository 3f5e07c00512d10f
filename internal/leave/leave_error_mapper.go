package leave

import (
	"errors"

	leaveerrors "hrms-backend/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if pgErr.ConstraintName == "fk_leave_requests_approved_by" {
			return leaveerrors.ErrInvalidApprover
		}
		return leaveerrors.ErrEmployeeNotFound
	}

	return err
}

package user

import (
	"errors"

	usererrors "hrms-backend/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_username", "uq_users_email":
			return usererrors.ErrUserAlreadyExists
		}
	}

	return err
}

// MapRepositoryError is exported for packages that write users directly.
func MapRepositoryError(err error) error {
	return mapRepositoryError(err)
}

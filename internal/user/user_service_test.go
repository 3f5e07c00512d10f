package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/password"
	"hrms-backend/internal/softdelete"
	"hrms-backend/internal/user"
	usererrors "hrms-backend/internal/user/errors"
	mock_user "hrms-backend/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mock_user.MockRepository, sqlmock.Sqlmock, user.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := user.NewService(repo, lifecycle.NewRecorder(db, nil))
	return repo, sqlMock, svc
}

func adminActor() rbac.Actor {
	return rbac.Actor{UserID: uuid.New(), Username: "root", Role: rbac.RoleAdmin}
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().
			FindAll(gomock.Any(), softdelete.Visible).
			Return([]user.User{{ID: uuid.New(), Username: "alice", Email: "alice@mail.com", IsActive: true}}, nil)

		res, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "alice", res[0].Username)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().FindAll(gomock.Any(), softdelete.Visible).Return(nil, errors.New("db error"))

		res, err := svc.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("soft deleted user is not found", func(t *testing.T) {
		repo, _, svc := setup(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_GetByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.GetByRole(ctx, "owner")
		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("success", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().FindByRole(gomock.Any(), rbac.RoleManager).Return([]user.User{{Role: rbac.RoleManager}}, nil)

		res, err := svc.GetByRole(ctx, "manager")
		assert.NoError(t, err)
		assert.Equal(t, "manager", res[0].Role)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("role change requires admin", func(t *testing.T) {
		_, _, svc := setup(t)
		role := "admin"
		manager := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleManager}

		_, err := svc.Update(ctx, manager, id.String(), user.UpdateUserRequest{Role: &role})
		assert.ErrorIs(t, err, usererrors.ErrRoleChangeForbidden)
	})

	t.Run("admin changes role", func(t *testing.T) {
		repo, _, svc := setup(t)
		role := "manager"
		repo.EXPECT().
			Update(gomock.Any(), id, map[string]any{"role": rbac.RoleManager}).
			Return(&user.User{ID: id, Role: rbac.RoleManager}, nil)

		res, err := svc.Update(ctx, adminActor(), id.String(), user.UpdateUserRequest{Role: &role})
		assert.NoError(t, err)
		assert.Equal(t, "manager", res.Role)
	})

	t.Run("self update normalizes email", func(t *testing.T) {
		repo, _, svc := setup(t)
		self := rbac.Actor{UserID: id, Role: rbac.RoleEmployee}
		email := "  Alice@Mail.com "
		repo.EXPECT().
			Update(gomock.Any(), id, map[string]any{"email": "alice@mail.com"}).
			Return(&user.User{ID: id, Email: "alice@mail.com"}, nil)

		res, err := svc.UpdateMe(ctx, self, user.UpdateUserRequest{Email: &email})
		assert.NoError(t, err)
		assert.Equal(t, "alice@mail.com", res.Email)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	actor := adminActor()

	t.Run("success records the actor", func(t *testing.T) {
		repo, sqlMock, svc := setup(t)
		sqlMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			MarkDeleted(gomock.Any(), id, actor.ID()).
			Return(&user.User{ID: id, Envelope: softdelete.Envelope{IsDeleted: true, DeletedBy: actor.ID()}}, nil)
		sqlMock.ExpectCommit()

		res, err := svc.Delete(ctx, actor, id.String())

		assert.NoError(t, err)
		assert.True(t, res.IsDeleted)
		assert.Equal(t, actor.UserID, *res.DeletedBy)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("missing user rolls back", func(t *testing.T) {
		repo, sqlMock, svc := setup(t)
		sqlMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().MarkDeleted(gomock.Any(), id, actor.ID()).Return(nil, gorm.ErrRecordNotFound)
		sqlMock.ExpectRollback()

		_, err := svc.Delete(ctx, actor, id.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestUserService_Restore(t *testing.T) {
	repo, sqlMock, svc := setup(t)
	id := uuid.New()

	sqlMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Restore(gomock.Any(), id).Return(&user.User{ID: id}, nil)
	sqlMock.ExpectCommit()

	res, err := svc.Restore(context.Background(), adminActor(), id.String())

	assert.NoError(t, err)
	assert.False(t, res.IsDeleted)
	assert.Nil(t, res.DeletedAt)
	assert.Nil(t, res.DeletedBy)
}

func TestUserService_ToggleStatus(t *testing.T) {
	repo, _, svc := setup(t)
	id := uuid.New()

	repo.EXPECT().FindByID(gomock.Any(), id).Return(&user.User{ID: id, IsActive: true}, nil)
	repo.EXPECT().
		Update(gomock.Any(), id, map[string]any{"is_active": false}).
		Return(&user.User{ID: id, IsActive: false}, nil)

	res, err := svc.ToggleStatus(context.Background(), id.String())

	assert.NoError(t, err)
	assert.False(t, res.IsActive)
}

func TestUserService_ChangePassword(t *testing.T) {
	repo, _, svc := setup(t)
	id := uuid.New()

	repo.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]any) (*user.User, error) {
			assert.True(t, password.Verify(fields["password_hash"].(string), "newsecret"))
			assert.Equal(t, false, fields["is_temp_password"])
			assert.Equal(t, false, fields["require_password_reset"])
			assert.Nil(t, fields["temp_password_expiry"])
			return &user.User{ID: id}, nil
		})

	_, err := svc.ChangePassword(context.Background(), id.String(), "newsecret")
	assert.NoError(t, err)
}

func TestUserService_SetTempPassword(t *testing.T) {
	repo, _, svc := setup(t)
	id := uuid.New()

	repo.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]any) (*user.User, error) {
			assert.Equal(t, true, fields["is_temp_password"])
			assert.Equal(t, true, fields["require_password_reset"])
			return &user.User{ID: id, IsTempPassword: true, RequirePasswordReset: true}, nil
		})

	res, err := svc.SetTempPassword(context.Background(), id.String(), user.TempPasswordRequest{TempPassword: "temp1234"})

	assert.NoError(t, err)
	assert.Equal(t, "Temporary password set successfully", res.Message)
	assert.True(t, res.User.IsTempPassword)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), res.ExpiresAt, time.Minute)
}

func TestUserService_SetTempPassword_ExpiryOutOfRange(t *testing.T) {
	for _, hours := range []int{0, user.MaxTempPasswordExpiryHours + 1, 3_000_000} {
		_, _, svc := setup(t)

		_, err := svc.SetTempPassword(context.Background(), uuid.NewString(), user.TempPasswordRequest{
			TempPassword: "temp1234",
			ExpiryHours:  &hours,
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidExpiryHours, "hours=%d", hours)
	}
}

package user

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hrms-backend/internal/events"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/password"
	"hrms-backend/internal/softdelete"
	usererrors "hrms-backend/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTempPasswordExpiryHours = 24
	MaxTempPasswordExpiryHours     = 24 * 365
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, actor rbac.Actor) (UserResponse, error)
	UpdateMe(ctx context.Context, actor rbac.Actor, req UpdateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByRole(ctx context.Context, role string) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, actor rbac.Actor, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error)
	GetDeleted(ctx context.Context) ([]UserResponse, error)
	GetWithDeleted(ctx context.Context) ([]UserResponse, error)
	Restore(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error)
	PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error)
	ToggleStatus(ctx context.Context, id string) (UserResponse, error)
	ChangePassword(ctx context.Context, id, newPassword string) (UserResponse, error)
	SetTempPassword(ctx context.Context, id string, req TempPasswordRequest) (TempPasswordResponse, error)
}

type service struct {
	repo     Repository
	recorder *lifecycle.Recorder
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, recorder *lifecycle.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, recorder: recorder, now: time.Now, logger: l}
}

func (s *service) GetMe(ctx context.Context, actor rbac.Actor) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateMe(ctx context.Context, actor rbac.Actor, req UpdateUserRequest) (UserResponse, error) {
	return s.update(ctx, actor, actor.UserID, req)
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, softdelete.Visible)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByRole(ctx context.Context, role string) ([]UserResponse, error) {
	r, err := rbac.ParseRole(role)
	if err != nil {
		return nil, usererrors.ErrInvalidRole
	}

	users, err := s.repo.FindByRole(ctx, r)
	if err != nil {
		s.logger.Error("get users by role failed", zap.String("role", role), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, actor rbac.Actor, id string, req UpdateUserRequest) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	return s.update(ctx, actor, uid, req)
}

func (s *service) update(ctx context.Context, actor rbac.Actor, id uuid.UUID, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	fields := map[string]any{}
	if req.Username != nil {
		fields["username"] = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if actor.Role != rbac.RoleAdmin {
			return UserResponse{}, usererrors.ErrRoleChangeForbidden
		}
		role, err := rbac.ParseRole(*req.Role)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		fields["role"] = role
	}
	if req.IsActive != nil {
		if actor.Role != rbac.RoleAdmin {
			return UserResponse{}, usererrors.ErrStatusChangeForbidden
		}
		fields["is_active"] = *req.IsActive
	}

	u, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		l.Warn("update user failed", zap.String("user_id", id.String()), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("update user success", zap.String("user_id", id.String()))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error) {
	return s.transition(ctx, actor, id, events.EventSoftDeleted, func(repo Repository, uid uuid.UUID) (*User, error) {
		return repo.MarkDeleted(ctx, uid, actor.ID())
	})
}

func (s *service) GetDeleted(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, softdelete.DeletedOnly)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetWithDeleted(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, softdelete.IncludeDeleted)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) Restore(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error) {
	return s.transition(ctx, actor, id, events.EventRestored, func(repo Repository, uid uuid.UUID) (*User, error) {
		return repo.Restore(ctx, uid)
	})
}

func (s *service) PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (UserResponse, error) {
	return s.transition(ctx, actor, id, events.EventPurged, func(repo Repository, uid uuid.UUID) (*User, error) {
		return repo.PermanentlyDelete(ctx, uid)
	})
}

// transition runs a lifecycle operation and its event in one transaction.
func (s *service) transition(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	eventType string,
	op func(repo Repository, id uuid.UUID) (*User, error),
) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityUser, uid, actor.ID(),
		func(tx *sql.Tx) (*User, error) {
			return op(s.repo.WithTx(tx), uid)
		})
	if err != nil {
		l.Warn("user lifecycle operation failed",
			zap.String("event_type", eventType),
			zap.String("user_id", id),
			zap.Error(err),
		)
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user lifecycle operation success",
		zap.String("event_type", eventType),
		zap.String("user_id", id),
		zap.String("actor_id", actor.UserID.String()),
	)
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u, err = s.repo.Update(ctx, uid, map[string]any{"is_active": !u.IsActive})
	if err != nil {
		s.logger.Error("toggle user status failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) ChangePassword(ctx context.Context, id, newPassword string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u, err := s.repo.Update(ctx, uid, map[string]any{
		"password_hash":          hash,
		"require_password_reset": false,
		"is_temp_password":       false,
		"temp_password_expiry":   nil,
	})
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) SetTempPassword(ctx context.Context, id string, req TempPasswordRequest) (TempPasswordResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return TempPasswordResponse{}, usererrors.ErrInvalidUserID
	}

	hours := DefaultTempPasswordExpiryHours
	if req.ExpiryHours != nil {
		hours = *req.ExpiryHours
	}
	if hours < 1 || hours > MaxTempPasswordExpiryHours {
		return TempPasswordResponse{}, usererrors.ErrInvalidExpiryHours
	}
	expiresAt := s.now().UTC().Add(time.Duration(hours) * time.Hour)

	hash, err := password.Hash(req.TempPassword)
	if err != nil {
		s.logger.Error("hash temp password failed", zap.Error(err))
		return TempPasswordResponse{}, err
	}

	u, err := s.repo.Update(ctx, uid, map[string]any{
		"password_hash":          hash,
		"is_temp_password":       true,
		"temp_password_expiry":   expiresAt,
		"require_password_reset": true,
	})
	if err != nil {
		return TempPasswordResponse{}, mapRepositoryError(err)
	}

	return TempPasswordResponse{
		Message:   "Temporary password set successfully",
		User:      mapToResponse(*u),
		ExpiresAt: expiresAt,
	}, nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:                   u.ID.String(),
		Username:             u.Username,
		Email:                u.Email,
		Role:                 string(u.Role),
		IsActive:             u.IsActive,
		IsTempPassword:       u.IsTempPassword,
		TempPasswordExpiry:   u.TempPasswordExpiry,
		RequirePasswordReset: u.RequirePasswordReset,
		LastLogin:            u.LastLogin,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
		Envelope:             u.Envelope,
	}
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}

// ToResponse exposes the public user shape to other packages.
func ToResponse(u User) UserResponse {
	return mapToResponse(u)
}

package auth

import (
	"context"
	"strings"
	"time"

	autherrors "hrms-backend/internal/auth/errors"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/password"
	"hrms-backend/internal/softdelete"
	"hrms-backend/internal/user"
	usererrors "hrms-backend/internal/user/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (rbac.Actor, error)
}

type service struct {
	users  user.Repository
	tokens *TokenManager
	now    func() time.Time
	logger *zap.Logger
}

func NewService(users user.Repository, tokens *TokenManager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, tokens: tokens, now: time.Now, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := rbac.RoleEmployee
	if req.Role != "" {
		r, err := rbac.ParseRole(req.Role)
		if err != nil {
			return user.UserResponse{}, autherrors.ErrInvalidRole
		}
		role = r
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		l.Error("register lookup failed", zap.Error(err))
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		l.Error("register hash password failed", zap.Error(err))
		return user.UserResponse{}, err
	}

	u := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		l.Warn("register persist failed", zap.String("username", username), zap.Error(err))
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	l.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", string(role)))
	return user.ToResponse(*u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if softdelete.IsNotFound(err) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		l.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if !password.Verify(u.PasswordHash, req.Password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserDeactivated
	}

	now := s.now().UTC()
	if u.TempPasswordExpired(now) {
		return LoginResponse{}, autherrors.ErrTempPasswordExpired
	}

	token, err := s.tokens.IssueToken(u.ID)
	if err != nil {
		l.Error("login issue token failed", zap.Error(err))
		return LoginResponse{}, err
	}

	updated, err := s.users.Update(ctx, u.ID, map[string]any{"last_login": now})
	if err != nil {
		// last_login is best effort.
		l.Warn("login stamp last_login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	} else {
		u = updated
	}

	l.Info("user logged in", zap.String("user_id", u.ID.String()))
	return LoginResponse{Token: token, User: user.ToResponse(*u)}, nil
}

// VerifyToken resolves token to the actor it was issued to. Users that were
// soft-deleted or deactivated after issue are rejected.
func (s *service) VerifyToken(ctx context.Context, token string) (rbac.Actor, error) {
	if strings.TrimSpace(token) == "" {
		return rbac.Actor{}, autherrors.ErrAccessTokenRequired
	}

	userID, err := s.tokens.ParseToken(token)
	if err != nil {
		return rbac.Actor{}, err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if softdelete.IsNotFound(err) {
			return rbac.Actor{}, autherrors.ErrUserNotFound
		}
		return rbac.Actor{}, err
	}
	if !u.IsActive {
		return rbac.Actor{}, autherrors.ErrUserDeactivated
	}

	return rbac.Actor{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-backend/internal/auth"
	autherrors "hrms-backend/internal/auth/errors"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/user"
	usererrors "hrms-backend/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error)
	LoginFn    func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) VerifyToken(ctx context.Context, token string) (rbac.Actor, error) {
	return rbac.Actor{}, autherrors.ErrInvalidToken
}

func newRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := auth.NewHandler(svc, auth.CookieOptions{})
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeAuthService{RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
			return user.UserResponse{Username: req.Username, Role: "employee"}, nil
		}}

		w := post(newRouter(svc), "/auth/register", `{"username":"alice","email":"alice@mail.com","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "User registered successfully")
	})

	t.Run("duplicate is 400", func(t *testing.T) {
		svc := &fakeAuthService{RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserAlreadyExists
		}}

		w := post(newRouter(svc), "/auth/register", `{"username":"alice","email":"alice@mail.com","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
	})

	t.Run("missing email", func(t *testing.T) {
		w := post(newRouter(&fakeAuthService{}), "/auth/register", `{"username":"alice","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email is required")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets cookie", func(t *testing.T) {
		svc := &fakeAuthService{LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{Token: "tok", User: user.UserResponse{Username: req.Username}}, nil
		}}

		w := post(newRouter(svc), "/auth/login", `{"username":"alice","password":"secret123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
	})

	t.Run("invalid credentials is 400", func(t *testing.T) {
		svc := &fakeAuthService{LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
		}}

		w := post(newRouter(svc), "/auth/login", `{"username":"alice","password":"bad"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}

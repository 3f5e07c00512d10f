package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/user"
	usererrors "hrms-backend/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	user.Service
	GetMeFn        func(ctx context.Context, actor rbac.Actor) (user.UserResponse, error)
	GetAllFn       func(ctx context.Context) ([]user.UserResponse, error)
	DeleteFn       func(ctx context.Context, actor rbac.Actor, id string) (user.UserResponse, error)
	ToggleStatusFn func(ctx context.Context, id string) (user.UserResponse, error)
}

func (f *fakeUserService) GetMe(ctx context.Context, actor rbac.Actor) (user.UserResponse, error) {
	return f.GetMeFn(ctx, actor)
}
func (f *fakeUserService) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeUserService) Delete(ctx context.Context, actor rbac.Actor, id string) (user.UserResponse, error) {
	return f.DeleteFn(ctx, actor, id)
}
func (f *fakeUserService) ToggleStatus(ctx context.Context, id string) (user.UserResponse, error) {
	return f.ToggleStatusFn(ctx, id)
}

func newContext(method, target, body string, actor *rbac.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, w
}

func TestUserHandler_Me(t *testing.T) {
	actor := rbac.Actor{UserID: uuid.New(), Username: "alice", Role: rbac.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{GetMeFn: func(ctx context.Context, a rbac.Actor) (user.UserResponse, error) {
			assert.Equal(t, actor.UserID, a.UserID)
			return user.UserResponse{ID: a.UserID.String(), Username: a.Username}, nil
		}}
		c, w := newContext(http.MethodGet, "/api/v1/users/me", "", &actor)

		user.NewHandler(svc).Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("no actor", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/v1/users/me", "", nil)

		user.NewHandler(&fakeUserService{}).Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_GetAll_Paginates(t *testing.T) {
	svc := &fakeUserService{GetAllFn: func(ctx context.Context) ([]user.UserResponse, error) {
		return []user.UserResponse{{Username: "a"}, {Username: "b"}, {Username: "c"}}, nil
	}}
	c, w := newContext(http.MethodGet, "/api/v1/users?page=2&page_size=2", "", nil)

	user.NewHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"c"`)
	assert.NotContains(t, w.Body.String(), `"username":"a"`)
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestUserHandler_Delete(t *testing.T) {
	admin := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleAdmin}
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{DeleteFn: func(ctx context.Context, a rbac.Actor, got string) (user.UserResponse, error) {
			assert.Equal(t, admin, a)
			assert.Equal(t, id, got)
			return user.UserResponse{ID: got}, nil
		}}
		c, w := newContext(http.MethodDelete, "/api/v1/users/"+id, "", &admin)
		c.Params = gin.Params{{Key: "id", Value: id}}

		user.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeUserService{DeleteFn: func(ctx context.Context, a rbac.Actor, got string) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserNotFound
		}}
		c, w := newContext(http.MethodDelete, "/api/v1/users/"+id, "", &admin)
		c.Params = gin.Params{{Key: "id", Value: id}}

		user.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	svc := &fakeUserService{ToggleStatusFn: func(ctx context.Context, id string) (user.UserResponse, error) {
		return user.UserResponse{ID: id, IsActive: false}, nil
	}}
	c, w := newContext(http.MethodPut, "/api/v1/users/x/toggle-status", "", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	user.NewHandler(svc).ToggleStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User deactivated successfully")
}

func TestUserHandler_ChangePassword_Validation(t *testing.T) {
	c, w := newContext(http.MethodPut, "/api/v1/users/x/change-password", `{}`, nil)

	user.NewHandler(&fakeUserService{}).ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "New Password is required")
}

func TestUserHandler_SetTempPassword_ExpiryTooLarge(t *testing.T) {
	c, w := newContext(http.MethodPut, "/api/v1/users/x/temp-password", `{"tempPassword":"temp1234","expiryHours":3000000}`, nil)

	user.NewHandler(&fakeUserService{}).SetTempPassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Expiry Hours is invalid")
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	autherrors "hrms-backend/internal/auth/errors"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	actor rbac.Actor
	err   error
	got   string
}

func (f *fakeVerifier) VerifyToken(ctx context.Context, token string) (rbac.Actor, error) {
	f.got = token
	return f.actor, f.err
}

type fakeEnforcer struct {
	allowed bool
}

func (f fakeEnforcer) Enforce(req rbac.EnforceRequest) (bool, error) {
	return f.allowed, nil
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/users/:id", handlers...)
	return r
}

func serve(r *gin.Engine, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	actor := rbac.Actor{UserID: uuid.New(), Username: "alice", Role: rbac.RoleEmployee}

	t.Run("missing token", func(t *testing.T) {
		r := newRouter(Authenticate(&fakeVerifier{actor: actor}))
		w := serve(r, "/users/1", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("bearer token", func(t *testing.T) {
		v := &fakeVerifier{actor: actor}
		var seen rbac.Actor
		r := newRouter(Authenticate(v), func(c *gin.Context) {
			seen, _ = ActorFrom(c)
			c.Next()
		})
		w := serve(r, "/users/1", "tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok", v.got)
		assert.Equal(t, actor, seen)
	})

	t.Run("cookie token", func(t *testing.T) {
		v := &fakeVerifier{actor: actor}
		r := newRouter(Authenticate(v))

		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-tok"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cookie-tok", v.got)
	})

	t.Run("expired token", func(t *testing.T) {
		r := newRouter(Authenticate(&fakeVerifier{err: autherrors.ErrTokenExpired}))
		w := serve(r, "/users/1", "tok")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})
}

func TestRequireOwnershipOrRoles(t *testing.T) {
	self := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleEmployee}
	r := newRouter(Authenticate(&fakeVerifier{actor: self}), RequireOwnershipOrRoles("id", rbac.AdminOrManager))

	w := serve(r, "/users/"+self.UserID.String(), "tok")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, "/users/"+uuid.NewString(), "tok")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRBACAuthorize(t *testing.T) {
	actor := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleManager}

	r := newRouter(Authenticate(&fakeVerifier{actor: actor}),
		RBACAuthorize(fakeEnforcer{allowed: false}, rbac.ResourceEmployee, rbac.ActionPurge))
	w := serve(r, "/users/1", "tok")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
	assert.Contains(t, w.Body.String(), `"required":["admin"]`)

	r = newRouter(Authenticate(&fakeVerifier{actor: actor}),
		RBACAuthorize(fakeEnforcer{allowed: true}, rbac.ResourceEmployee, rbac.ActionRead))
	w = serve(r, "/users/1", "tok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRBACAuthorize_NoActor(t *testing.T) {
	r := newRouter(RBACAuthorize(fakeEnforcer{allowed: true}, rbac.ResourceEmployee, rbac.ActionRead))
	w := serve(r, "/users/1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

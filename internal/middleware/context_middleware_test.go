package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDAndContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	uid := uuid.New()

	r := gin.New()
	r.Use(RequestID())
	r.Use(func(c *gin.Context) {
		SetActor(c, rbac.Actor{UserID: uid, Role: rbac.RoleManager})
		c.Next()
	})
	r.Use(ContextLogger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("handled")
		c.Status(http.StatusNoContent)
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "rid-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-42", w.Header().Get(HeaderRequestID))
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "rid-42", fields["request_id"])
		assert.Equal(t, uid.String(), fields["user_id"])
		assert.Equal(t, "manager", fields["role"])
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", maxRequestIDLen+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		rid := w.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err)
		logs.TakeAll()
	})
}

package audit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms-backend/internal/audit"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuditService struct {
	audit.Service
	ListFn func(ctx context.Context, q audit.ListQuery) ([]audit.EntryResponse, error)
}

func (f *fakeAuditService) List(ctx context.Context, q audit.ListQuery) ([]audit.EntryResponse, error) {
	return f.ListFn(ctx, q)
}

func newAuditRouter(t *testing.T, svc audit.Service, role rbac.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enforcer, err := rbac.NewEnforcer(rbac.Policy)
	require.NoError(t, err)

	auth := func(c *gin.Context) {
		middleware.SetActor(c, rbac.Actor{UserID: uuid.New(), Role: role})
		c.Next()
	}

	r := gin.New()
	audit.RegisterRoutes(r.Group("/api/v1"), audit.NewHandler(svc), rbac.NewService(enforcer, rbac.Policy), auth, zap.NewNop())
	return r
}

func TestAuditHandler_List(t *testing.T) {
	entityID := uuid.NewString()
	svc := &fakeAuditService{ListFn: func(ctx context.Context, q audit.ListQuery) ([]audit.EntryResponse, error) {
		assert.Equal(t, "employee", q.Entity)
		assert.Equal(t, entityID, q.EntityID)
		return []audit.EntryResponse{{EventType: "record.soft_deleted", EntityID: entityID}}, nil
	}}

	t.Run("admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuditRouter(t, svc, rbac.RoleAdmin).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs?entity=employee&entityId="+entityID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "record.soft_deleted")
	})

	t.Run("manager is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuditRouter(t, svc, rbac.RoleManager).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown entity", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuditRouter(t, svc, rbac.RoleAdmin).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs?entity=payroll", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-backend/internal/leave"
	leaveerrors "hrms-backend/internal/leave/errors"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLeaveService struct {
	leave.Service
	CreateFn      func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	GetByStatusFn func(ctx context.Context, status string) ([]leave.LeaveResponse, error)
	GetPendingFn  func(ctx context.Context) ([]leave.LeaveResponse, error)
	ApproveFn     func(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error)
	RejectFn      func(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeLeaveService) GetByStatus(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	return f.GetByStatusFn(ctx, status)
}
func (f *fakeLeaveService) GetPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.GetPendingFn(ctx)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return f.ApproveFn(ctx, actor, id, req)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return f.RejectFn(ctx, actor, id, req)
}

func newLeaveRouter(t *testing.T, svc leave.Service, actor rbac.Actor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enforcer, err := rbac.NewEnforcer(rbac.Policy)
	require.NoError(t, err)
	rbacSvc := rbac.NewService(enforcer, rbac.Policy)

	auth := func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}

	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc), rbacSvc, auth, nil, zap.NewNop())
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLeaveHandler_Create(t *testing.T) {
	employeeActor := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleEmployee}
	eid := uuid.NewString()

	t.Run("employee can request leave", func(t *testing.T) {
		svc := &fakeLeaveService{CreateFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{EmployeeID: req.EmployeeID, LeaveType: req.LeaveType, Status: leave.StatusPending}, nil
		}}

		w := do(newLeaveRouter(t, svc, employeeActor), http.MethodPost, "/api/v1/leave-requests",
			`{"employeeId":"`+eid+`","leaveType":"sick","startDate":"2024-05-01","endDate":"2024-05-02"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		w := do(newLeaveRouter(t, &fakeLeaveService{}, employeeActor), http.MethodPost, "/api/v1/leave-requests",
			`{"employeeId":"`+eid+`","leaveType":"holiday","startDate":"2024-05-01","endDate":"2024-05-02"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Leave Type is invalid")
	})

	t.Run("reversed range", func(t *testing.T) {
		svc := &fakeLeaveService{CreateFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrInvalidDateRange
		}}

		w := do(newLeaveRouter(t, svc, employeeActor), http.MethodPost, "/api/v1/leave-requests",
			`{"employeeId":"`+eid+`","leaveType":"sick","startDate":"2024-05-03","endDate":"2024-05-02"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "End date must not be before start date")
	})
}

func TestLeaveHandler_Decisions(t *testing.T) {
	lid := uuid.NewString()
	manager := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleManager}
	svc := &fakeLeaveService{
		ApproveFn: func(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, manager.UserID, actor.UserID)
			assert.Equal(t, lid, id)
			assert.Empty(t, req.ApprovedBy)
			return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
		},
		RejectFn: func(ctx context.Context, actor rbac.Actor, id string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{ID: id, Status: leave.StatusRejected, ApprovedBy: req.ApprovedBy}, nil
		},
	}

	t.Run("approve with empty body", func(t *testing.T) {
		w := do(newLeaveRouter(t, svc, manager), http.MethodPut, "/api/v1/leave-requests/"+lid+"/approve", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Leave request approved successfully")
		assert.Contains(t, w.Body.String(), `"leaveRequest"`)
	})

	t.Run("reject with explicit approver", func(t *testing.T) {
		approver := uuid.NewString()
		w := do(newLeaveRouter(t, svc, manager), http.MethodPut, "/api/v1/leave-requests/"+lid+"/reject",
			`{"approvedBy":"`+approver+`"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Leave request rejected")
		assert.Contains(t, w.Body.String(), approver)
	})

	t.Run("malformed approver", func(t *testing.T) {
		w := do(newLeaveRouter(t, svc, manager), http.MethodPut, "/api/v1/leave-requests/"+lid+"/approve",
			`{"approvedBy":"bob"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Approved By is invalid")
	})

	t.Run("employee cannot approve", func(t *testing.T) {
		employee := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleEmployee}
		w := do(newLeaveRouter(t, svc, employee), http.MethodPut, "/api/v1/leave-requests/"+lid+"/approve", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLeaveHandler_StatusRoutes(t *testing.T) {
	actor := rbac.Actor{UserID: uuid.New(), Role: rbac.RoleEmployee}
	svc := &fakeLeaveService{
		GetPendingFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{{Status: leave.StatusPending}}, nil
		},
		GetByStatusFn: func(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
			if status == "cancelled" {
				return nil, leaveerrors.ErrInvalidStatus
			}
			return []leave.LeaveResponse{{Status: status}}, nil
		},
	}
	r := newLeaveRouter(t, svc, actor)

	w := do(r, http.MethodGet, "/api/v1/leave-requests/pending", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = do(r, http.MethodGet, "/api/v1/leave-requests/status/approved", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	w = do(r, http.MethodGet, "/api/v1/leave-requests/status/cancelled", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

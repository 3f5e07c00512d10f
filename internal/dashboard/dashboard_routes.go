package dashboard

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	dash := r.Group("/dashboard")
	dash.Use(auth)
	dash.Use(middleware.ContextLogger(logger))
	dash.Use(middleware.RateLimitByUser(5, 20))
	dash.Use(middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead))
	{
		dash.GET("/stats", h.GetStats)
		dash.GET("/employees-by-department", h.GetEmployeesByDepartment)
		dash.GET("/attendance-trends", h.GetAttendanceTrends)
		dash.GET("/leave-request-stats", h.GetLeaveRequestStats)
		dash.GET("/recent-activities", h.GetRecentActivities)
	}
}

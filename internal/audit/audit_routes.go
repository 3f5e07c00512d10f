package audit

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
	logs := r.Group("/audit-logs")
	logs.Use(auth)
	logs.Use(middleware.ContextLogger(logger))
	{
		logs.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionRead), h.List)
	}
}

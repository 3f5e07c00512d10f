package department

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	departments := r.Group("/departments")
	departments.Use(auth)
	departments.Use(middleware.ContextLogger(logger))
	departments.Use(middleware.RateLimitByUser(5, 20))
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead), h.GetAll)
		departments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			h.Create,
		)
		departments.GET("/deleted/all", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionReadDeleted), h.GetDeleted)
		departments.GET("/with-deleted/all", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionReadDeleted), h.GetWithDeleted)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead), h.GetByID)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionUpdate), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionDelete), h.Delete)
		departments.PUT("/:id/restore", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRestore), h.Restore)
		departments.DELETE("/:id/permanent", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionPurge), h.PermanentlyDelete)
	}
}

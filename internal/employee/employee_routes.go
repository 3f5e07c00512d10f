package employee

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(auth)
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(middleware.RateLimitByUser(5, 20))
	{
		employees.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)
		employees.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		employees.GET("/deleted/all",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionReadDeleted),
			handler.GetDeleted,
		)
		employees.GET("/with-deleted/all",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionReadDeleted),
			handler.GetWithDeleted,
		)
		employees.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetByID,
		)
		employees.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionDelete),
			handler.Delete,
		)
		employees.PUT("/:id/restore",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRestore),
			handler.Restore,
		)
		employees.DELETE("/:id/permanent",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionPurge),
			handler.PermanentlyDelete,
		)
	}
}

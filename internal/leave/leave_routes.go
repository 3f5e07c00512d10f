package leave

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
	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, action)
	}

	leaves := r.Group("/leave-requests")
	leaves.Use(auth)
	leaves.Use(middleware.ContextLogger(logger))
	leaves.Use(middleware.RateLimitByUser(5, 20))
	{
		leaves.GET("", authorize(rbac.ActionRead), h.GetAll)
		leaves.GET("/pending", authorize(rbac.ActionRead), h.GetPending)
		leaves.GET("/status/:status", authorize(rbac.ActionRead), h.GetByStatus)
		leaves.GET("/employee/:employeeId", authorize(rbac.ActionRead), h.GetByEmployee)
		leaves.GET("/date-range", authorize(rbac.ActionRead), h.GetByDateRange)
		leaves.GET("/deleted/all", authorize(rbac.ActionReadDeleted), h.GetDeleted)
		leaves.GET("/with-deleted/all", authorize(rbac.ActionReadDeleted), h.GetWithDeleted)
		leaves.GET("/:id", authorize(rbac.ActionRead), h.GetByID)

		leaves.POST("", authorize(rbac.ActionCreate), middleware.Idempotency(rdb, logger), h.Create)
		leaves.PUT("/:id", authorize(rbac.ActionUpdate), h.Update)
		leaves.PUT("/:id/approve", authorize(rbac.ActionApprove), h.Approve)
		leaves.PUT("/:id/reject", authorize(rbac.ActionApprove), h.Reject)
		leaves.DELETE("/:id", authorize(rbac.ActionDelete), h.Delete)
		leaves.PUT("/:id/restore", authorize(rbac.ActionRestore), h.Restore)
		leaves.DELETE("/:id/permanent", authorize(rbac.ActionPurge), h.PermanentlyDelete)
	}
}

package attendance

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
	idempotent := middleware.Idempotency(rdb, logger)
	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, action)
	}

	att := r.Group("/attendance")
	att.Use(auth)
	att.Use(middleware.ContextLogger(logger))
	att.Use(middleware.RateLimitByUser(5, 20))
	{
		att.GET("", authorize(rbac.ActionRead), h.GetAll)
		att.GET("/date-range", authorize(rbac.ActionRead), h.GetByDateRange)
		att.GET("/employee/:employeeId", authorize(rbac.ActionRead), h.GetByEmployee)
		att.GET("/deleted/all", authorize(rbac.ActionReadDeleted), h.GetDeleted)
		att.GET("/with-deleted/all", authorize(rbac.ActionReadDeleted), h.GetWithDeleted)
		att.GET("/:id", authorize(rbac.ActionRead), h.GetByID)

		att.POST("/check-in", authorize(rbac.ActionCheckIn), idempotent, h.CheckIn)
		att.POST("/check-out", authorize(rbac.ActionCheckIn), idempotent, h.CheckOut)

		att.POST("", authorize(rbac.ActionCreate), idempotent, h.Create)
		att.PUT("/:id", authorize(rbac.ActionUpdate), h.Update)
		att.DELETE("/:id", authorize(rbac.ActionDelete), h.Delete)
		att.PUT("/:id/restore", authorize(rbac.ActionRestore), h.Restore)
		att.DELETE("/:id/permanent", authorize(rbac.ActionPurge), h.PermanentlyDelete)
	}
}

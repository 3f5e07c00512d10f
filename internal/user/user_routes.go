package user

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(auth)
	users.Use(middleware.ContextLogger(logger))
	users.Use(middleware.RateLimitByUser(5, 20))
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", handler.UpdateMe)

		users.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionList),
			handler.GetAll,
		)
		users.GET("/role/:role",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionList),
			handler.GetByRole,
		)
		users.GET("/deleted/all",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionReadDeleted),
			handler.GetDeleted,
		)
		users.GET("/with-deleted/all",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionReadDeleted),
			handler.GetWithDeleted,
		)

		users.GET("/:id",
			middleware.RequireOwnershipOrRoles("id", rbac.RequiredRoles(rbac.ResourceUser, rbac.ActionRead)),
			handler.GetByID,
		)
		users.PUT("/:id",
			middleware.RequireOwnershipOrRoles("id", rbac.RequiredRoles(rbac.ResourceUser, rbac.ActionUpdate)),
			handler.Update,
		)

		users.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionDelete),
			handler.Delete,
		)
		users.PUT("/:id/restore",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRestore),
			handler.Restore,
		)
		users.DELETE("/:id/permanent",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionPurge),
			handler.PermanentlyDelete,
		)
		users.PUT("/:id/toggle-status",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.ToggleStatus,
		)
		users.PUT("/:id/change-password",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.ChangePassword,
		)
		users.PUT("/:id/temp-password",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.SetTempPassword,
		)
	}
}

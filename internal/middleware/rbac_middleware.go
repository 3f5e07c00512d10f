package middleware

import (
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the actor's role against the enforcer for resource:action.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     actor.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}

		if !allowed {
			abortWithError(c, apperror.ErrForbidden.WithDetails(map[string]any{
				"required": rbac.RequiredRoles(resource, action).Strings(),
				"current":  string(actor.Role),
			}))
			return
		}
		c.Next()
	}
}
